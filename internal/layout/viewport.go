// Package layout decides which UI shell composes around a screen and how the
// navigation panel responds to viewport changes.
package layout

// ViewportClass buckets the viewport width. Widths are in abstract viewport
// units; the TUI converts terminal columns to units before classifying.
type ViewportClass int

const (
	ViewportNarrow ViewportClass = iota
	ViewportMedium
	ViewportWide
)

// Breakpoints between viewport classes, in viewport units.
const (
	BreakpointNarrow = 768
	BreakpointMedium = 1024
)

func (v ViewportClass) String() string {
	switch v {
	case ViewportNarrow:
		return "narrow"
	case ViewportMedium:
		return "medium"
	default:
		return "wide"
	}
}

// ClassifyViewport buckets a width. Recomputed on every resize, never stored.
func ClassifyViewport(width int) ViewportClass {
	switch {
	case width < BreakpointNarrow:
		return ViewportNarrow
	case width < BreakpointMedium:
		return ViewportMedium
	default:
		return ViewportWide
	}
}
