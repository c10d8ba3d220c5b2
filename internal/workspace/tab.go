package workspace

import (
	"slices"

	"codeplace/internal/document"
)

// TabControl is the selectable label bound to one screen.
type TabControl struct {
	id       document.Identity
	label    string
	selected bool
	modified bool
	group    *Group
	onSelect func(*TabControl)
}

func (t *TabControl) ID() document.Identity { return t.id }
func (t *TabControl) Label() string         { return t.label }
func (t *TabControl) Selected() bool        { return t.selected }

// Modified is the "unsaved changes" indicator.
func (t *TabControl) Modified() bool { return t.modified }

// Select marks the control selected, deselects the rest of its group and
// fires the select callback. Selecting an already selected control does nothing.
func (t *TabControl) Select() {
	if t.selected {
		return
	}
	t.selected = true
	if t.group != nil {
		t.group.deselectOthers(t)
	}
	if t.onSelect != nil {
		t.onSelect(t)
	}
}

// SetModified updates the visual modified indicator.
func (t *TabControl) SetModified(on bool) { t.modified = on }

func (t *TabControl) rename(id document.Identity, label string) {
	t.id = id
	t.label = label
}

// Group is a mutual-exclusion set of tab controls: at most one is selected.
type Group struct {
	controls []*TabControl
}

// NewGroup returns an empty selection group.
func NewGroup() *Group { return &Group{} }

// Add registers t with the group. A selected control joining the group
// deselects the others.
func (g *Group) Add(t *TabControl) {
	if t == nil || t.group == g {
		return
	}
	t.group = g
	g.controls = append(g.controls, t)
	if t.selected {
		g.deselectOthers(t)
	}
}

// Remove deregisters t.
func (g *Group) Remove(t *TabControl) {
	idx := slices.Index(g.controls, t)
	if idx < 0 {
		return
	}
	g.controls = slices.Delete(g.controls, idx, idx+1)
	t.group = nil
	t.selected = false
}

// Controls returns the members in insertion order.
func (g *Group) Controls() []*TabControl {
	return slices.Clone(g.controls)
}

// Selected returns the selected control, or nil.
func (g *Group) Selected() *TabControl {
	for _, t := range g.controls {
		if t.selected {
			return t
		}
	}
	return nil
}

// Len is the number of registered controls.
func (g *Group) Len() int { return len(g.controls) }

// deselectOthers clears every member except keep without firing callbacks.
func (g *Group) deselectOthers(keep *TabControl) {
	for _, t := range g.controls {
		if t != keep {
			t.selected = false
		}
	}
}
