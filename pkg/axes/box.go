package axes

import "github.com/matzehuels/figstyle/pkg/surface"

// MoveBox shifts every panel by (dx, dy) figure fractions.
func MoveBox(axs surface.Collection, dx, dy float64) {
	for _, ax := range axs.Flatten() {
		b := ax.Position()
		b.X0 += dx
		b.Y0 += dy
		ax.SetPosition(b)
	}
}

// ChangeBox grows every panel by (dw, dh) figure fractions, keeping the
// lower-left corner in place.
func ChangeBox(axs surface.Collection, dw, dh float64) {
	for _, ax := range axs.Flatten() {
		b := ax.Position()
		b.W += dw
		b.H += dh
		ax.SetPosition(b)
	}
}

// AlignXBox copies the horizontal offset and width of ref onto s.
func AlignXBox(s, ref surface.Surface) {
	b, r := s.Position(), ref.Position()
	b.X0, b.W = r.X0, r.W
	s.SetPosition(b)
}
