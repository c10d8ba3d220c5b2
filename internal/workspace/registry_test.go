package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"codeplace/internal/document"
)

func newTestRegistry(t *testing.T) (*Registry, *TaskQueue, *ShortcutTable, *[]document.Identity) {
	t.Helper()
	tasks := &TaskQueue{}
	keys := NewShortcutTable()
	var loaded []document.Identity
	r := NewRegistry(NewGroup(), tasks, keys, func(s *Screen) {
		loaded = append(loaded, s.ID())
	}, nil)
	return r, tasks, keys, &loaded
}

func TestRegistryOpenRejectsDuplicates(t *testing.T) {
	r, _, _, _ := newTestRegistry(t)

	_, err := r.Open("a.go", document.Code, &fakeEditor{})
	require.NoError(t, err)
	_, err = r.Open("a.go", document.Code, &fakeEditor{})
	require.ErrorIs(t, err, ErrDuplicateIdentity)
	_, err = r.Open("", document.Code, &fakeEditor{})
	require.ErrorIs(t, err, ErrUnknownIdentity)

	require.Equal(t, 1, r.Len())
	require.Equal(t, 1, r.Group().Len())
}

func TestRegistryDefersLoadForCodeOnly(t *testing.T) {
	r, tasks, _, loaded := newTestRegistry(t)

	_, err := r.Open("a.go", document.Code, &fakeEditor{})
	require.NoError(t, err)
	_, err = r.Open("Untitled-1", document.NewFile, &fakeEditor{})
	require.NoError(t, err)
	_, err = r.Open(document.WelcomeID, document.Welcome, nil)
	require.NoError(t, err)
	require.Empty(t, *loaded)

	require.Equal(t, 1, tasks.Drain())
	require.Equal(t, []document.Identity{"a.go"}, *loaded)
}

func TestRegistryLoadSkippedAfterRemove(t *testing.T) {
	r, tasks, _, loaded := newTestRegistry(t)
	_, err := r.Open("a.go", document.Code, &fakeEditor{})
	require.NoError(t, err)
	require.NoError(t, r.Remove("a.go"))

	tasks.Drain()
	require.Empty(t, *loaded)
}

func TestRegistrySetCurrentMovesFocusAndScope(t *testing.T) {
	r, tasks, keys, _ := newTestRegistry(t)
	ea, eb := &fakeEditor{}, &fakeEditor{}
	a, err := r.Open("a", document.NewFile, ea)
	require.NoError(t, err)
	b, err := r.Open("b", document.NewFile, eb)
	require.NoError(t, err)

	require.NoError(t, r.SetCurrent("a"))
	tasks.Drain()
	require.True(t, ea.focused)
	require.True(t, keys.Active(a.scope()))
	require.True(t, a.Tab().Selected())

	require.NoError(t, r.SetCurrent("b"))
	require.False(t, ea.focused)
	require.True(t, eb.focused)
	require.False(t, keys.Active(a.scope()))
	require.True(t, keys.Active(b.scope()))
	// selection follows once the event is done
	require.True(t, a.Tab().Selected())
	tasks.Drain()
	require.False(t, a.Tab().Selected())
	require.True(t, b.Tab().Selected())

	require.ErrorIs(t, r.SetCurrent("ghost"), ErrUnknownIdentity)
	cur, ok := r.Current()
	require.True(t, ok)
	require.Equal(t, document.Identity("b"), cur)
}

func TestRegistryStaleSelectionIsDropped(t *testing.T) {
	r, tasks, _, _ := newTestRegistry(t)
	_, err := r.Open("a", document.NewFile, &fakeEditor{})
	require.NoError(t, err)
	_, err = r.Open("b", document.NewFile, &fakeEditor{})
	require.NoError(t, err)

	require.NoError(t, r.SetCurrent("a"))
	require.NoError(t, r.SetCurrent("b"))
	tasks.Drain()

	cur, _ := r.Current()
	require.Equal(t, document.Identity("b"), cur)
	require.Equal(t, document.Identity("b"), r.Group().Selected().ID())
}

func TestRegistryTabSelectMakesCurrent(t *testing.T) {
	r, tasks, _, _ := newTestRegistry(t)
	a, err := r.Open("a", document.NewFile, &fakeEditor{})
	require.NoError(t, err)
	_, err = r.Open("b", document.NewFile, &fakeEditor{})
	require.NoError(t, err)
	require.NoError(t, r.SetCurrent("b"))
	tasks.Drain()

	a.Tab().Select()
	tasks.Drain()
	cur, _ := r.Current()
	require.Equal(t, document.Identity("a"), cur)
	require.Equal(t, a.Tab(), r.Group().Selected())
}

func TestRegistryRemove(t *testing.T) {
	r, tasks, keys, _ := newTestRegistry(t)
	a, err := r.Open("a", document.NewFile, &fakeEditor{})
	require.NoError(t, err)
	keys.Bind(a.scope(), DefaultKeyMap().Save, func() bool { return true })
	require.NoError(t, r.SetCurrent("a"))
	tasks.Drain()

	require.NoError(t, r.Remove("a"))
	_, ok := r.Current()
	require.False(t, ok)
	require.Nil(t, r.CurrentScreen())
	require.False(t, keys.Active(a.scope()))
	require.False(t, keys.Dispatch("ctrl+s"))
	require.Zero(t, r.Group().Len())
	require.False(t, a.Tab().Selected())

	require.ErrorIs(t, r.Remove("a"), ErrUnknownIdentity)
}

func TestRegistryRekeyKeepsPosition(t *testing.T) {
	r, _, _, _ := newTestRegistry(t)
	for _, id := range []document.Identity{"a", "Untitled-1", "c"} {
		_, err := r.Open(id, document.NewFile, &fakeEditor{})
		require.NoError(t, err)
	}
	require.NoError(t, r.SetCurrent("Untitled-1"))

	require.NoError(t, r.Rekey("Untitled-1", "/x/b.py"))
	require.Equal(t, []document.Identity{"a", "/x/b.py", "c"}, r.Identities())
	cur, _ := r.Current()
	require.Equal(t, document.Identity("/x/b.py"), cur)

	s, ok := r.Lookup("/x/b.py")
	require.True(t, ok)
	require.Equal(t, document.Code, s.Kind())
	require.Equal(t, "b.py", s.Tab().Label())

	require.ErrorIs(t, r.Rekey("Untitled-1", "z"), ErrUnknownIdentity)
	require.ErrorIs(t, r.Rekey("a", "c"), ErrDuplicateIdentity)
}

func TestRegistryNext(t *testing.T) {
	r, _, _, _ := newTestRegistry(t)
	_, ok := r.Next("a")
	require.False(t, ok)

	for _, id := range []document.Identity{"a", "b", "c"} {
		_, err := r.Open(id, document.NewFile, &fakeEditor{})
		require.NoError(t, err)
	}
	tests := []struct {
		after document.Identity
		want  document.Identity
	}{
		{"a", "b"},
		{"b", "c"},
		{"c", "a"},
		{"", "a"},
		{"gone", "a"},
	}
	for _, tt := range tests {
		got, ok := r.Next(tt.after)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "after %q", tt.after)
	}
}
