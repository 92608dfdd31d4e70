package surface

import "image/color"

// Axis selects one coordinate axis of a surface.
type Axis int

const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// TickSet selects major or minor ticks.
type TickSet int

const (
	Major TickSet = iota
	Minor
)

// Scale is the axis transform.
type Scale int

const (
	Linear Scale = iota
	Log
)

func (s Scale) String() string {
	if s == Log {
		return "log"
	}
	return "linear"
}

// Side names one of the four spines.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// HAlign is horizontal text alignment.
type HAlign int

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is vertical text alignment.
type VAlign int

const (
	AlignMiddle VAlign = iota
	AlignTop
	AlignBottom
)

// LineStyle follows the usual short codes.
type LineStyle string

const (
	Solid   LineStyle = "-"
	Dashed  LineStyle = "--"
	Dotted  LineStyle = ":"
	DashDot LineStyle = "-."
	NoLine  LineStyle = "None"
)

// Marker follows the usual single-character codes.
type Marker string

const (
	NoMarker Marker = ""
	Circle   Marker = "o"
	Cross    Marker = "x"
	Plus     Marker = "+"
	Square   Marker = "s"
	Triangle Marker = "^"
	Point    Marker = "."
)

// TickFormatter turns a tick value into its label.
type TickFormatter func(v float64) string

// Box is a panel position in figure fractions, origin bottom-left.
type Box struct {
	X0, Y0 float64
	W, H   float64
}

// Line is a polyline artist, optionally with markers at each vertex.
type Line struct {
	X, Y       []float64
	Color      color.Color // nil means the backend default
	Width      float64     // points; 0 means the backend default
	Style      LineStyle   // empty means Solid
	Marker     Marker
	MarkerSize float64 // points
	Z          int     // higher draws later
}

// Text is a label placed in data coordinates.
type Text struct {
	X, Y   float64
	Text   string
	Size   float64 // points; 0 means the backend default
	HAlign HAlign
	VAlign VAlign
	Color  color.Color
}

// Title is a panel title. Loc left titles are used for panel numbers.
type Title struct {
	Text   string
	Left   bool
	Bold   bool
	HAlign HAlign
	VAlign VAlign
	Pad    float64  // points between title and panel top
	Y      *float64 // axes-fraction position; nil keeps the default
}

// Annotation is text anchored to the y axis label and offset in points.
// It is how row titles sit to the left of a panel row.
type Annotation struct {
	Text             string
	OffsetX, OffsetY float64 // points, relative to the y label
	Size             float64 // points
	HAlign           HAlign
	VAlign           VAlign
}

// GridLines requests grid lines along one axis.
type GridLines struct {
	Axis  Axis
	Which TickSet
	Color color.Color
	Width float64 // points
	Z     int     // negative values draw beneath data
}

// Ellipse is an outline or filled ellipse in data coordinates.
type Ellipse struct {
	CX, CY        float64
	Width, Height float64 // full axis lengths
	Angle         float64 // degrees, counter-clockwise
	Color         color.Color
	Fill          bool
	LineWidth     float64
}

// Image is a 2D scalar field drawn through a colormap.
// Data is indexed [row][col].
type Image struct {
	Data        [][]float64
	VMin, VMax  float64
	Colormap    string // "gray" or "bwr"
	OriginLower bool
	Colorbar    bool
}

// LegendHandle is a line/marker sample shown next to a legend label.
type LegendHandle struct {
	Marker     Marker
	Color      color.Color
	Style      LineStyle
	Width      float64
	MarkerSize float64
}

// LegendEntry pairs a label with its handle.
type LegendEntry struct {
	Label  string
	Handle LegendHandle
}

// Surface is one drawable panel.
//
// Implementations mutate in place. Methods that create engine artists return
// the engine's error unchanged; nothing else is validated.
type Surface interface {
	Limits(ax Axis) (lo, hi float64)
	SetLimits(ax Axis, lo, hi float64)
	Scale(ax Axis) Scale
	SetScale(ax Axis, s Scale)

	SetTickFormatter(ax Axis, f TickFormatter)
	SetTickPadding(ax Axis, which TickSet, pad float64)
	ClearTicks(ax Axis)

	SetLabel(ax Axis, text string)
	LabelPadding(ax Axis) float64
	SetTitle(t Title)

	SetSpineVisible(side Side, visible bool)
	SetSpineOffset(side Side, points float64)

	Position() Box
	SetPosition(b Box)

	// Twin returns a new surface sharing the x axis whose y axis is drawn
	// on the right.
	Twin() Surface

	AddGrid(g GridLines)
	AddLine(l Line) error
	AddText(t Text) error
	AddAnnotation(a Annotation)
	AddEllipse(e Ellipse) error
	AddImage(img Image) error
	AddLegend(entries []LegendEntry)
}
