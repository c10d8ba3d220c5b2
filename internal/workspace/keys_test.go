package workspace

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestShortcutScopes(t *testing.T) {
	tbl := NewShortcutTable()
	km := DefaultKeyMap()
	var ran []string
	tbl.Bind("outer", km.Save, func() bool { ran = append(ran, "outer"); return true })
	tbl.Bind("inner", km.Save, func() bool { ran = append(ran, "inner"); return true })

	require.False(t, tbl.Dispatch("ctrl+s"), "inactive scopes see nothing")

	tbl.Activate("outer")
	tbl.Activate("inner")
	require.True(t, tbl.Dispatch("ctrl+s"))
	require.Equal(t, []string{"inner"}, ran)

	tbl.Deactivate("inner")
	require.True(t, tbl.Dispatch("CTRL+S"))
	require.Equal(t, []string{"inner", "outer"}, ran)

	tbl.Drop("outer")
	require.False(t, tbl.Active("outer"))
	tbl.Activate("outer")
	require.False(t, tbl.Dispatch("ctrl+s"), "dropped handlers are gone")
}

func TestShortcutPropagation(t *testing.T) {
	tbl := NewShortcutTable()
	cycle := DefaultKeyMap().Cycle
	var ran []string
	tbl.Bind("place", cycle, func() bool { ran = append(ran, "place"); return true })
	tbl.Bind("screen", cycle, func() bool { ran = append(ran, "screen"); return false })
	tbl.Activate("place")
	tbl.Activate("screen")

	require.True(t, tbl.Dispatch("ctrl+right"))
	require.Equal(t, []string{"screen", "place"}, ran)
	require.False(t, tbl.Dispatch(""))
	require.False(t, tbl.Dispatch("ctrl+q"))
}

func TestShortcutDisabledBinding(t *testing.T) {
	tbl := NewShortcutTable()
	b := key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "emulate"))
	b.SetEnabled(false)
	tbl.Bind("s", b, func() bool { return true })
	tbl.Bind("s", DefaultKeyMap().Close, func() bool { return true })
	tbl.Bind("s", key.Binding{}, nil)
	tbl.Activate("s")

	require.False(t, tbl.Dispatch("ctrl+e"))
	require.True(t, tbl.Dispatch("ctrl+w"))
	require.Len(t, tbl.Bindings(), 1)
	require.Equal(t, "close tab", tbl.Bindings()[0].Help().Desc)
}

func TestShortcutHandlerMayDropItsScope(t *testing.T) {
	tbl := NewShortcutTable()
	tbl.Bind("s", DefaultKeyMap().Close, func() bool {
		tbl.Drop("s")
		return true
	})
	tbl.Activate("s")
	require.True(t, tbl.Dispatch("ctrl+w"))
	require.False(t, tbl.Dispatch("ctrl+w"))
}
