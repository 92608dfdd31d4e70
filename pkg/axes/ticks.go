package axes

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/surface"
)

// DefaultLogTickPad is the tick padding, in points, used by
// [AdjustLogTickPadding] callers that have no preference.
const DefaultLogTickPad = 2.1

// Which selects the x axis, the y axis, or both.
type Which string

const (
	WhichX    Which = "x"
	WhichY    Which = "y"
	WhichBoth Which = "both"
)

// ParseWhich parses "x", "y" or "both". The empty string means both.
func ParseWhich(s string) (Which, error) {
	switch Which(s) {
	case "", WhichBoth:
		return WhichBoth, nil
	case WhichX, WhichY:
		return Which(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "axis must be x, y or both, got %q", s)
}

func (w Which) x() bool { return w == WhichX || w == WhichBoth }
func (w Which) y() bool { return w == WhichY || w == WhichBoth }

// IntFormat formats integral values without a decimal part and everything
// else in %g notation.
func IntFormat(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%g", v)
}

// IntFormatTicks installs [IntFormat] as the major tick formatter.
func IntFormatTicks(axs surface.Collection, which Which) {
	for _, ax := range axs.Flatten() {
		if which.x() {
			ax.SetTickFormatter(surface.X, IntFormat)
		}
		if which.y() {
			ax.SetTickFormatter(surface.Y, IntFormat)
		}
	}
}

// ScaleTicks labels ticks with their value multiplied by scale, for example
// to show seconds on an axis holding milliseconds.
func ScaleTicks(axs surface.Collection, scale float64, x, y bool) {
	f := func(v float64) string { return fmt.Sprintf("%g", v*scale) }
	for _, ax := range axs.Flatten() {
		if x {
			ax.SetTickFormatter(surface.X, f)
		}
		if y {
			ax.SetTickFormatter(surface.Y, f)
		}
	}
}

// AdjustLogTickPadding sets major and minor tick padding on every
// log-scaled axis. Linear axes are left alone.
func AdjustLogTickPadding(axs surface.Collection, pad float64) {
	for _, ax := range axs.Flatten() {
		for _, a := range []surface.Axis{surface.X, surface.Y} {
			if ax.Scale(a) != surface.Log {
				continue
			}
			ax.SetTickPadding(a, surface.Major, pad)
			ax.SetTickPadding(a, surface.Minor, pad)
		}
	}
}
