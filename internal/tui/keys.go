package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"codeplace/internal/config"
	"codeplace/internal/workspace"
)

// appKeyMap holds the host-level shortcuts. Document shortcuts live in the
// workspace key map.
type appKeyMap struct {
	New      key.Binding
	Open     key.Binding
	SaveAll  key.Binding
	Welcome  key.Binding
	Diff     key.Binding
	DiffView key.Binding
	CopyPath key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

func newKeyMaps(k config.KeysConfig) (appKeyMap, workspace.KeyMap) {
	app := appKeyMap{
		New:      binding(k.New, "new file"),
		Open:     binding(k.Open, "open file"),
		SaveAll:  binding(k.SaveAll, "save all"),
		Welcome:  binding(k.Welcome, "welcome tab"),
		Diff:     binding(k.Diff, "unsaved changes"),
		DiffView: binding([]string{"v"}, "unified/side-by-side"),
		CopyPath: binding(k.CopyPath, "copy path"),
		Help:     binding(k.Help, "help"),
		Quit:     binding(k.Quit, "quit"),
	}
	place := workspace.KeyMap{
		Save:    binding(k.Save, "save"),
		Emulate: binding(k.Emulate, "select for emulation"),
		Cycle:   binding(k.Cycle, "next tab"),
		Close:   binding(k.Close, "close tab"),
	}
	return app, place
}

// list returns the bindings in help order.
func (k appKeyMap) list() []key.Binding {
	return []key.Binding{k.New, k.Open, k.SaveAll, k.Welcome, k.Diff, k.CopyPath, k.Help, k.Quit}
}
