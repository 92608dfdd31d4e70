// Package palette maps category indices to colors from named qualitative
// palettes.
package palette

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/figstyle/pkg/errors"
)

// Default is the palette used when no name is given.
const Default = "tab10"

// None requests the neutral color (black) instead of a palette entry.
const None = -1

// Black is returned for None.
var Black = color.RGBA{A: 0xff}

var palettes = map[string][]string{
	"tab10": {
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
	"deep": {
		"#4C72B0", "#DD8452", "#55A868", "#C44E52", "#8172B3",
		"#937860", "#DA8BC3", "#8C8C8C", "#CCB974", "#64B5CD",
	},
	"muted": {
		"#4878D0", "#EE854A", "#6ACC64", "#D65F5F", "#956CB4",
		"#8C613C", "#DC7EC0", "#797979", "#D5BB67", "#82C6E2",
	},
	"pastel": {
		"#A1C9F4", "#FFB482", "#8DE5A1", "#FF9F9B", "#D0BBFF",
		"#DEBB9B", "#FAB0E4", "#CFCFCF", "#FFFEA3", "#B9F2F0",
	},
	"dark": {
		"#001C7F", "#B1400D", "#12711C", "#8C0800", "#591E71",
		"#592F0D", "#A23582", "#3C3C3C", "#B8850A", "#006374",
	},
	"colorblind": {
		"#0173B2", "#DE8F05", "#029E73", "#D55E00", "#CC78BC",
		"#CA9161", "#FBAFE4", "#949494", "#ECE133", "#56B4E9",
	},
	"bright": {
		"#023EFF", "#FF7C00", "#1AC938", "#E8000B", "#8B2BE2",
		"#9F4800", "#F14CC1", "#A3A3A3", "#FFC400", "#00D7FF",
	},
}

// Names lists the known palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Colors returns the colors of the named palette. An empty name selects
// Default.
func Colors(name string) ([]color.RGBA, error) {
	if name == "" {
		name = Default
	}
	hexes, ok := palettes[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "palette %q not supported", name)
	}
	out := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// IdxToColor returns the idx-th color of the named palette, or Black when
// idx is None. Other negative indices count back from the end of the
// palette, so -2 is the second to last color. Indices outside the palette
// are an error.
func IdxToColor(idx int, name string) (color.RGBA, error) {
	if idx == None {
		return Black, nil
	}
	colors, err := Colors(name)
	if err != nil {
		return color.RGBA{}, err
	}
	i := idx
	if i < 0 {
		i += len(colors)
	}
	if i < 0 || i >= len(colors) {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidInput,
			"color index %d out of range for palette %q (%d colors)", idx, name, len(colors))
	}
	return colors[i], nil
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
