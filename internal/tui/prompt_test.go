package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"codeplace/internal/tui/state"
)

type answer struct {
	path string
	ok   bool
}

func TestPromptQueuesRequests(t *testing.T) {
	p := newPathPrompt(afero.NewMemMapFs())
	var got []answer
	record := func(path string, ok bool) { got = append(got, answer{path, ok}) }

	p.ChooseSave("/a", record)
	p.ChooseSave("/b", record)
	require.True(t, p.Active())
	require.Equal(t, state.SavePrompt, p.Mode())
	require.Equal(t, "/a/", p.input.Value())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one.txt")})
	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []answer{{"/a/one.txt", true}}, got)
	require.Equal(t, "/b/", p.input.Value(), "next request starts in its own directory")

	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, []answer{{"/a/one.txt", true}, {"", false}}, got)
	require.False(t, p.Active())
	require.Equal(t, state.NoPrompt, p.Mode())
}

func TestPromptRejectsDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/proj/src", 0o755))
	p := newPathPrompt(fs)
	called := false
	p.ChooseSave("/proj/src", func(string, bool) { called = true })

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, called)
	require.True(t, p.Active())
	require.Contains(t, p.View(), "is a directory")
}

func TestPromptEmptyValueCancels(t *testing.T) {
	p := newPathPrompt(afero.NewMemMapFs())
	var got answer
	p.Open("", func(path string, ok bool) { got = answer{path, ok} })
	require.Equal(t, "Open: ", p.View()[:len("Open: ")])

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, answer{"", false}, got)
	require.False(t, p.Active())
}

func TestPromptSuggestions(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, f := range []string{"/proj/main.go", "/proj/Makefile", "/proj/readme.md"} {
		require.NoError(t, afero.WriteFile(fs, f, nil, 0o644))
	}
	require.NoError(t, fs.MkdirAll("/proj/mod", 0o755))
	p := newPathPrompt(fs)
	p.Open("/proj", func(string, bool) {})
	require.Len(t, p.suggest, 4)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	require.Equal(t, []string{"/proj/Makefile", "/proj/main.go", "/proj/mod/"}, p.suggest)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "/proj/mod/", p.input.Value())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "x.py"), expandPath(" ~/x.py "))

	t.Setenv("CODEPLACE_TEST_DIR", "/srv")
	require.Equal(t, "/srv/a", expandPath("$CODEPLACE_TEST_DIR/a"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "rel.txt"), expandPath("rel.txt"))
}
