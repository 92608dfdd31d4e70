// Package axes provides cosmetic mutators for plot panels.
//
// Every function accepts a [surface.Collection] (or a single
// [surface.Surface] where only one panel makes sense), flattens it once and
// mutates each panel in order. Nothing is returned except newly created
// surfaces, and parameters are forwarded without validation: a per-panel
// list shorter than the collection panics on the missing index, just as an
// out-of-range slice access would.
//
// # Ticks
//
//   - [IntFormatTicks]: "3" instead of "3.0" for integral tick values
//   - [ScaleTicks]: label ticks with value×scale
//   - [AdjustLogTickPadding]: tighter tick padding on log axes
//
// # Spines and Twins
//
//   - [MoveXAxisOutward], [MoveYAxisOutward]: detach the bottom/left spine
//   - [LeftToRightTwin]: a twin panel whose only y spine is on the right
//
// # Labels
//
// [SetLabels] applies axis labels, titles and bold panel numbers:
//
//	axes.SetLabels(axs, axes.Labels{
//	    X:         axes.All("time (s)"),
//	    Y:         axes.Each("rate (Hz)", "gain"),
//	    PanelNums: axes.Auto,
//	})
//
// [RowTitle] places a title to the left of a panel row.
//
// # Boxes, Grids and Limits
//
//   - [MoveBox], [ChangeBox], [AlignXBox]: panel positions in figure fractions
//   - [Grid]: faint major/minor grid lines beneath the data
//   - [ShareXLims], [ShareYLims]: common limits over a collection
package axes
