package surface

// Kind tags the shape of a Collection.
type Kind int

const (
	KindSequence Kind = iota
	KindSingle
	KindGrid
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindSequence:
		return "sequence"
	case KindGrid:
		return "grid"
	}
	return "unknown"
}

// Collection is one surface, an ordered sequence of surfaces, or a
// rectangular grid of them. The zero value is an empty sequence.
type Collection struct {
	kind   Kind
	single Surface
	seq    []Surface
	grid   [][]Surface
}

// Single wraps one surface.
func Single(s Surface) Collection {
	return Collection{kind: KindSingle, single: s}
}

// Sequence wraps surfaces in the given order.
func Sequence(ss ...Surface) Collection {
	return Collection{kind: KindSequence, seq: ss}
}

// Grid wraps rows of surfaces. Rows may be ragged; flattening walks them
// row by row regardless.
func Grid(rows [][]Surface) Collection {
	return Collection{kind: KindGrid, grid: rows}
}

// Of infers a collection from a dynamically typed value. It accepts a
// Collection, a Surface, []Surface and [][]Surface. Anything else yields an
// empty sequence.
func Of(v any) Collection {
	switch t := v.(type) {
	case Collection:
		return t
	case Surface:
		return Single(t)
	case []Surface:
		return Sequence(t...)
	case [][]Surface:
		return Grid(t)
	}
	return Collection{}
}

// Join concatenates collections into one sequence, preserving order.
func Join(cs ...Collection) Collection {
	var out []Surface
	for _, c := range cs {
		out = append(out, c.Flatten()...)
	}
	return Sequence(out...)
}

// Kind reports the shape the collection was built with.
func (c Collection) Kind() Kind { return c.kind }

// Len is the number of surfaces Flatten returns.
func (c Collection) Len() int {
	switch c.kind {
	case KindSingle:
		return 1
	case KindSequence:
		return len(c.seq)
	case KindGrid:
		n := 0
		for _, row := range c.grid {
			n += len(row)
		}
		return n
	}
	return 0
}

// Flatten returns the surfaces in traversal order (row-major for grids).
// The returned slice is freshly allocated.
func (c Collection) Flatten() []Surface {
	switch c.kind {
	case KindSingle:
		return []Surface{c.single}
	case KindSequence:
		out := make([]Surface, len(c.seq))
		copy(out, c.seq)
		return out
	case KindGrid:
		out := make([]Surface, 0, c.Len())
		for _, row := range c.grid {
			out = append(out, row...)
		}
		return out
	}
	return nil
}

// At returns the i-th surface in flattened order.
func (c Collection) At(i int) Surface {
	return c.Flatten()[i]
}
