package layout

// Panel is the collapse state machine for the navigation side panel,
// independent per mount.
//
// Rules: mount collapsed iff the viewport is narrow; any resize into narrow
// re-forces collapsed even over an explicit expand; widening out of narrow
// never auto-expands — the state persists until the user toggles it. A
// manual toggle always flips, including while narrow (the panel may be
// opened as an overlay), but the next narrow resize collapses it again.
type Panel struct {
	collapsed bool
	viewport  ViewportClass
}

// NewPanel mounts the panel for the given viewport width.
func NewPanel(width int) Panel {
	vc := ClassifyViewport(width)
	return Panel{collapsed: vc == ViewportNarrow, viewport: vc}
}

// Resize feeds a new viewport width into the state machine.
func (p Panel) Resize(width int) Panel {
	p.viewport = ClassifyViewport(width)
	if p.viewport == ViewportNarrow {
		p.collapsed = true
	}
	return p
}

// Toggle flips the collapse state unconditionally.
func (p Panel) Toggle() Panel {
	p.collapsed = !p.collapsed
	return p
}

// Collapsed reports whether the panel renders at reduced width.
func (p Panel) Collapsed() bool { return p.collapsed }

// Viewport returns the class observed at the last mount/resize.
func (p Panel) Viewport() ViewportClass { return p.viewport }
