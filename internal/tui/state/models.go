package state

// DiffMode controls how the unsaved-changes diff is rendered.
type DiffMode int

const (
	Unified DiffMode = iota
	SideBySide
)

// PromptMode says what the path prompt is collecting.
type PromptMode int

const (
	NoPrompt PromptMode = iota
	OpenPrompt
	SavePrompt
)

// UIState holds cross-widget UI state used by the tab bar, status bar,
// overlays and editor frame.
type UIState struct {
	// Layout
	Width    int
	Height   int
	MinCol   int
	TabWidth int

	// Overlays
	ShowHelp bool
	ShowDiff bool
	View     DiffMode
	Prompt   PromptMode

	// Current document, mirrored from the workspace after every event
	Label    string
	Path     string
	Kind     string
	Language string
	Modified bool
	Saving   bool
	Tabs     int

	// Emulation target chosen with ctrl+e
	RunTarget string

	// Notices and ephemeral messages
	Notice  string
	NoColor bool
}
