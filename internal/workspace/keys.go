package workspace

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the orchestrator's shortcut bindings.
type KeyMap struct {
	Save    key.Binding // per screen
	Emulate key.Binding // per screen
	Cycle   key.Binding
	Close   key.Binding
}

// DefaultKeyMap is Ctrl+S / Ctrl+E on screens and Ctrl+Tab / Ctrl+W on the place.
// Ctrl+Right mirrors Ctrl+Tab for terminals that cannot report it.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Emulate: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "select for emulation"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("ctrl+tab", "ctrl+right"),
			key.WithHelp("ctrl+tab", "next tab"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
	}
}

// Shortcut is a binding plus its handler. Run reports whether the key was consumed.
type Shortcut struct {
	Binding key.Binding
	Run     func() bool
}

// ShortcutTable is a set of focus-scoped handler tables. Only active scopes
// see key events; the most recently activated scope is consulted first.
type ShortcutTable struct {
	scopes map[string][]Shortcut
	active []string
}

// NewShortcutTable returns an empty table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{scopes: map[string][]Shortcut{}}
}

// Bind adds a handler to scope.
func (t *ShortcutTable) Bind(scope string, b key.Binding, run func() bool) {
	if run == nil {
		return
	}
	t.scopes[scope] = append(t.scopes[scope], Shortcut{Binding: b, Run: run})
}

// Drop removes scope and all of its handlers.
func (t *ShortcutTable) Drop(scope string) {
	t.Deactivate(scope)
	delete(t.scopes, scope)
}

// Activate enables scope. Re-activating moves it to the front.
func (t *ShortcutTable) Activate(scope string) {
	t.active = slices.DeleteFunc(t.active, func(s string) bool { return s == scope })
	t.active = append([]string{scope}, t.active...)
}

// Deactivate disables scope.
func (t *ShortcutTable) Deactivate(scope string) {
	t.active = slices.DeleteFunc(t.active, func(s string) bool { return s == scope })
}

// Active reports whether scope currently receives keys.
func (t *ShortcutTable) Active(scope string) bool {
	return slices.Contains(t.active, scope)
}

// Dispatch runs the first matching handler of the active scopes. A handler
// that returns true consumes the key and stops propagation.
func (t *ShortcutTable) Dispatch(k string) bool {
	pressed := normalizeKey(k)
	if pressed == "" {
		return false
	}
	// handlers may close screens and drop scopes, so walk a snapshot
	for _, scope := range slices.Clone(t.active) {
		for _, sc := range slices.Clone(t.scopes[scope]) {
			if !sc.Binding.Enabled() || !matches(sc.Binding, pressed) {
				continue
			}
			if sc.Run() {
				return true
			}
		}
	}
	return false
}

// Bindings lists the enabled bindings of the active scopes, for help output.
func (t *ShortcutTable) Bindings() []key.Binding {
	var out []key.Binding
	for _, scope := range t.active {
		for _, sc := range t.scopes[scope] {
			if sc.Binding.Enabled() {
				out = append(out, sc.Binding)
			}
		}
	}
	return out
}

func matches(b key.Binding, pressed string) bool {
	for _, k := range b.Keys() {
		if normalizeKey(k) == pressed {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
