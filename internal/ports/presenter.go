package ports

// Port: a boundary for rendering human-readable status messages.
// The core depends on this capability only, never on the rendering medium
// (console, UI, log sink).
type Presenter interface {
	Display(message string)
}
