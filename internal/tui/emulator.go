package tui

// runTarget records the file chosen with the emulate shortcut. The status bar
// shows it; running it is left to whatever consumes the path.
type runTarget struct {
	path string
}

func (r *runTarget) SelectForEmulation(path string) { r.path = path }
