package axes

import (
	"math"
	"testing"

	"github.com/matzehuels/figstyle/pkg/surface"
	"github.com/matzehuels/figstyle/pkg/surface/surfacetest"
)

func boxNear(a, b surface.Box) bool {
	const eps = 1e-12
	return math.Abs(a.X0-b.X0) < eps && math.Abs(a.Y0-b.Y0) < eps &&
		math.Abs(a.W-b.W) < eps && math.Abs(a.H-b.H) < eps
}

func TestMoveBox(t *testing.T) {
	recs, axs := surfacetest.Sequence(2)
	for _, r := range recs {
		r.Box = surface.Box{X0: 0.1, Y0: 0.2, W: 0.3, H: 0.4}
	}
	MoveBox(axs, 0.05, -0.1)
	want := surface.Box{X0: 0.15, Y0: 0.1, W: 0.3, H: 0.4}
	for _, r := range recs {
		if !boxNear(r.Box, want) {
			t.Errorf("%s: box = %+v, want %+v", r.Name, r.Box, want)
		}
	}
}

func TestChangeBox(t *testing.T) {
	r := surfacetest.New("a")
	r.Box = surface.Box{X0: 0.1, Y0: 0.2, W: 0.3, H: 0.4}
	ChangeBox(surface.Single(r), 0.1, 0)
	want := surface.Box{X0: 0.1, Y0: 0.2, W: 0.4, H: 0.4}
	if !boxNear(r.Box, want) {
		t.Errorf("box = %+v, want %+v", r.Box, want)
	}
}

func TestAlignXBox(t *testing.T) {
	a, ref := surfacetest.New("a"), surfacetest.New("ref")
	a.Box = surface.Box{X0: 0.1, Y0: 0.2, W: 0.3, H: 0.4}
	ref.Box = surface.Box{X0: 0.5, Y0: 0.6, W: 0.2, H: 0.1}
	AlignXBox(a, ref)
	want := surface.Box{X0: 0.5, Y0: 0.2, W: 0.2, H: 0.4}
	if a.Box != want {
		t.Errorf("box = %+v, want %+v", a.Box, want)
	}
	if ref.Box != (surface.Box{X0: 0.5, Y0: 0.6, W: 0.2, H: 0.1}) {
		t.Error("reference box should not change")
	}
}
