package state

// ToggleHelp flips the help overlay. Help and diff never show together.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	if s.ShowHelp {
		s.ShowDiff = false
	}
	return s
}

// ToggleDiff flips the unsaved-changes overlay.
func ToggleDiff(s UIState) UIState {
	s.ShowDiff = !s.ShowDiff
	if s.ShowDiff {
		s.ShowHelp = false
	}
	return s
}

// CloseOverlays hides help and diff.
func CloseOverlays(s UIState) UIState {
	s.ShowHelp = false
	s.ShowDiff = false
	return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
	if s.View == Unified {
		s.View = SideBySide
	} else {
		s.View = Unified
	}
	return s
}

// Resize updates the window size and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	threshold := 2*s.MinCol + 3
	if s.View == SideBySide && s.Width < threshold {
		s.View = Unified
		s.Notice = "Narrow width: using unified view"
	}
	return s
}

// OpenPromptFor shows the path prompt in mode m.
func OpenPromptFor(s UIState, m PromptMode) UIState {
	s.Prompt = m
	return s
}

// ClosePrompt hides the path prompt.
func ClosePrompt(s UIState) UIState {
	s.Prompt = NoPrompt
	return s
}

// SetNotice replaces the status-bar notice.
func SetNotice(s UIState, notice string) UIState {
	s.Notice = notice
	return s
}

// SetRunTarget records the file selected for emulation.
func SetRunTarget(s UIState, path string) UIState {
	s.RunTarget = path
	s.Notice = "Emulating " + path
	return s
}

// Document describes the current screen for Select.
type Document struct {
	Label    string
	Path     string
	Kind     string
	Language string
	Modified bool
	Saving   bool
}

// Select mirrors the current document into the state. tabs is the number of
// open screens; a zero Document means nothing is open.
func Select(s UIState, d Document, tabs int) UIState {
	s.Label = d.Label
	s.Path = d.Path
	s.Kind = d.Kind
	s.Language = d.Language
	s.Modified = d.Modified
	s.Saving = d.Saving
	s.Tabs = tabs
	if tabs == 0 {
		s.ShowDiff = false
	}
	return s
}
