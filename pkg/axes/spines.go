package axes

import "github.com/matzehuels/figstyle/pkg/surface"

// DefaultOutward is the spine offset, in points, used when callers have no
// preference.
const DefaultOutward = 3.0

// MoveXAxisOutward moves the bottom spine away from the data area.
func MoveXAxisOutward(axs surface.Collection, points float64) {
	for _, ax := range axs.Flatten() {
		ax.SetSpineOffset(surface.Bottom, points)
	}
}

// MoveYAxisOutward moves the left spine away from the data area.
func MoveYAxisOutward(axs surface.Collection, points float64) {
	for _, ax := range axs.Flatten() {
		ax.SetSpineOffset(surface.Left, points)
	}
}

// LeftToRightTwin hides the y axis of s and returns a twin sharing its x
// axis whose y axis is drawn on the right. The twin shows no spine except
// the right one, so nothing is drawn twice.
func LeftToRightTwin(s surface.Surface) surface.Surface {
	s.SetSpineVisible(surface.Right, false)
	s.SetSpineVisible(surface.Left, false)
	s.ClearTicks(surface.Y)

	twin := s.Twin()
	twin.SetSpineVisible(surface.Left, false)
	twin.SetSpineVisible(surface.Top, false)
	twin.SetSpineVisible(surface.Bottom, false)
	return twin
}
