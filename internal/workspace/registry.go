package workspace

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"codeplace/internal/document"
)

// Registry maps document identities to screens and tracks the current one.
// Insertion order is tab order.
type Registry struct {
	screens map[document.Identity]*Screen
	order   []document.Identity
	current document.Identity

	group  *Group
	tasks  *TaskQueue
	keys   *ShortcutTable
	load   func(*Screen)
	log    *zap.Logger
	serial int
}

// NewRegistry wires a registry to its selection group, deferred task queue and
// shortcut table. load is deferred once for every Code screen opened.
func NewRegistry(group *Group, tasks *TaskQueue, keys *ShortcutTable, load func(*Screen), log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		screens: map[document.Identity]*Screen{},
		group:   group,
		tasks:   tasks,
		keys:    keys,
		load:    load,
		log:     log,
	}
}

// Open creates a screen for id. editor may be nil for placeholder kinds.
func (r *Registry) Open(id document.Identity, kind document.Kind, editor Editor) (*Screen, error) {
	if id == "" {
		return nil, fmt.Errorf("open: %w: empty identity", ErrUnknownIdentity)
	}
	if _, ok := r.screens[id]; ok {
		return nil, fmt.Errorf("open %s: %w", id, ErrDuplicateIdentity)
	}
	r.serial++
	s := &Screen{id: id, kind: kind, editor: editor, serial: r.serial}
	s.tab = &TabControl{id: id, label: document.Label(id, kind)}
	s.tab.onSelect = func(t *TabControl) {
		if err := r.SetCurrent(t.id); err != nil {
			r.log.Warn("tab selected for closed screen", zap.String("id", string(t.id)), zap.Error(err))
		}
	}
	if editor != nil {
		editor.OnEdit(s.edited)
	}
	r.screens[id] = s
	r.order = append(r.order, id)
	r.group.Add(s.tab)

	if kind == document.Code && r.load != nil {
		// the editor handle exists now; content goes in after this event
		r.tasks.Defer(func() {
			if r.screens[s.id] == s {
				r.load(s)
			}
		})
	}
	r.log.Debug("screen opened", zap.String("id", string(id)), zap.Stringer("kind", kind))
	return s, nil
}

// Lookup returns the screen for id, if open.
func (r *Registry) Lookup(id document.Identity) (*Screen, bool) {
	s, ok := r.screens[id]
	return s, ok
}

// SetCurrent makes id the current screen: focus and shortcuts move with it
// and its tab is marked selected once the current event is done.
func (r *Registry) SetCurrent(id document.Identity) error {
	s, ok := r.screens[id]
	if !ok {
		return fmt.Errorf("set current %s: %w", id, ErrUnknownIdentity)
	}
	if r.current == id {
		return nil
	}
	if prev, ok := r.screens[r.current]; ok {
		prev.focus(false)
		r.keys.Deactivate(prev.scope())
	}
	r.current = id
	s.focus(true)
	r.keys.Activate(s.scope())
	tab := s.tab
	r.tasks.Defer(func() {
		if tab.group == r.group && r.current == tab.id {
			tab.Select()
		}
	})
	return nil
}

// Current returns the current identity; ok is false when nothing is open.
func (r *Registry) Current() (document.Identity, bool) {
	return r.current, r.current != ""
}

// CurrentScreen returns the current screen or nil.
func (r *Registry) CurrentScreen() *Screen {
	return r.screens[r.current]
}

// Remove discards the screen for id together with its tab and shortcuts.
// If it was current, nothing is current afterwards.
func (r *Registry) Remove(id document.Identity) error {
	s, ok := r.screens[id]
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrUnknownIdentity)
	}
	s.focus(false)
	r.keys.Drop(s.scope())
	r.group.Remove(s.tab)
	delete(r.screens, id)
	r.order = slices.DeleteFunc(r.order, func(o document.Identity) bool { return o == id })
	if r.current == id {
		r.current = ""
	}
	r.log.Debug("screen removed", zap.String("id", string(id)))
	return nil
}

// Rekey moves the screen for oldID under newID, keeping its position. The
// screen becomes a Code screen and its tab takes the new name.
func (r *Registry) Rekey(oldID, newID document.Identity) error {
	s, ok := r.screens[oldID]
	if !ok {
		return fmt.Errorf("rekey %s: %w", oldID, ErrUnknownIdentity)
	}
	if _, taken := r.screens[newID]; taken {
		return fmt.Errorf("rekey %s to %s: %w", oldID, newID, ErrDuplicateIdentity)
	}
	delete(r.screens, oldID)
	r.screens[newID] = s
	r.order[slices.Index(r.order, oldID)] = newID
	s.id = newID
	s.kind = document.Code
	s.tab.rename(newID, document.Label(newID, document.Code))
	if r.current == oldID {
		r.current = newID
	}
	r.log.Info("screen renamed", zap.String("from", string(oldID)), zap.String("to", string(newID)))
	return nil
}

// Next returns the cyclic successor of after in tab order. When after is not
// open the first screen is returned; ok is false only when nothing is open.
func (r *Registry) Next(after document.Identity) (document.Identity, bool) {
	if len(r.order) == 0 {
		return "", false
	}
	idx := slices.Index(r.order, after)
	if idx < 0 {
		return r.order[0], true
	}
	return r.order[(idx+1)%len(r.order)], true
}

// Screens returns the open screens in tab order.
func (r *Registry) Screens() []*Screen {
	out := make([]*Screen, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.screens[id])
	}
	return out
}

// Identities returns the open identities in tab order.
func (r *Registry) Identities() []document.Identity {
	return slices.Clone(r.order)
}

func (r *Registry) Len() int      { return len(r.order) }
func (r *Registry) Group() *Group { return r.group }
