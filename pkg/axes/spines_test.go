package axes

import (
	"testing"

	"github.com/matzehuels/figstyle/pkg/surface"
	"github.com/matzehuels/figstyle/pkg/surface/surfacetest"
)

func TestMoveAxisOutward(t *testing.T) {
	recs, axs := surfacetest.Grid(2, 2)
	MoveXAxisOutward(axs, DefaultOutward)
	MoveYAxisOutward(axs, 5)

	for _, row := range recs {
		for _, r := range row {
			if got := r.SpineOffset[surface.Bottom]; got != 3 {
				t.Errorf("%s: bottom offset = %v, want 3", r.Name, got)
			}
			if got := r.SpineOffset[surface.Left]; got != 5 {
				t.Errorf("%s: left offset = %v, want 5", r.Name, got)
			}
		}
	}
}

func TestLeftToRightTwin(t *testing.T) {
	host := surfacetest.New("host")
	host.SetLimits(surface.X, -1, 4)

	twin := LeftToRightTwin(host)

	if host.SpineVisible[surface.Left] || host.SpineVisible[surface.Right] {
		t.Error("host left/right spines should be hidden")
	}
	if !host.ClearedTicks[surface.Y] {
		t.Error("host y ticks should be cleared")
	}
	if len(host.Twins) != 1 || twin != surface.Surface(host.Twins[0]) {
		t.Fatal("twin should be created from host")
	}

	tw := host.Twins[0]
	for side, want := range map[surface.Side]bool{
		surface.Left:   false,
		surface.Top:    false,
		surface.Bottom: false,
		surface.Right:  true,
	} {
		if tw.SpineVisible[side] != want {
			t.Errorf("twin spine %v visible = %v, want %v", side, tw.SpineVisible[side], want)
		}
	}
	if lo, hi := tw.Limits(surface.X); lo != -1 || hi != 4 {
		t.Errorf("twin x limits = (%v, %v), want (-1, 4)", lo, hi)
	}
}
