package axes

import (
	"strings"

	"github.com/matzehuels/figstyle/pkg/surface"
)

const panelLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Text is either one string shared by all panels or one string per panel.
// The zero value sets nothing.
type Text struct {
	shared string
	each   []string
	set    bool
	auto   bool
}

// All applies s to every panel.
func All(s string) Text { return Text{shared: s, set: true} }

// Each applies ss[i] to the i-th panel.
func Each(ss ...string) Text { return Text{each: ss, set: true} }

// Auto numbers panels A, B, C, ... in flattened order. It is only
// meaningful for [Labels.PanelNums].
var Auto = Text{set: true, auto: true}

// IsSet reports whether t carries any text.
func (t Text) IsSet() bool { return t.set }

func (t Text) at(i int) string {
	switch {
	case t.auto:
		return string(panelLetters[i])
	case t.each != nil:
		return t.each[i]
	default:
		return t.shared
	}
}

// PanelNumStyle controls where panel numbers sit.
type PanelNumStyle struct {
	Space  int // trailing spaces after the number
	VAlign surface.VAlign
	Pad    float64  // points above the panel
	Y      *float64 // axes-fraction height; nil keeps the title default
}

// DefaultPanelNumStyle puts numbers flush on top of the panel.
func DefaultPanelNumStyle() PanelNumStyle {
	return PanelNumStyle{VAlign: surface.AlignBottom}
}

// Labels are the texts applied by [SetLabels].
type Labels struct {
	X, Y      Text
	Titles    Text
	PanelNums Text

	// PanelNum positions panel numbers; nil means DefaultPanelNumStyle.
	PanelNum *PanelNumStyle
}

// SetLabels applies x/y labels, centered titles and left-hand bold panel
// numbers to every panel.
func SetLabels(axs surface.Collection, l Labels) {
	style := DefaultPanelNumStyle()
	if l.PanelNum != nil {
		style = *l.PanelNum
	}
	for i, ax := range axs.Flatten() {
		if l.X.set {
			ax.SetLabel(surface.X, l.X.at(i))
		}
		if l.Y.set {
			ax.SetLabel(surface.Y, l.Y.at(i))
		}
		if l.Titles.set {
			ax.SetTitle(surface.Title{Text: l.Titles.at(i)})
		}
		if l.PanelNums.set {
			ax.SetTitle(surface.Title{
				Text:   l.PanelNums.at(i) + strings.Repeat(" ", style.Space),
				Left:   true,
				Bold:   true,
				HAlign: surface.AlignRight,
				VAlign: style.VAlign,
				Pad:    style.Pad,
				Y:      style.Y,
			})
		}
	}
}
