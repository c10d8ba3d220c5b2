package workspace

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap/zaptest"

	"codeplace/internal/document"
)

type fakeEditor struct {
	content string
	focused bool
	onEdit  func()
}

func (e *fakeEditor) SetContent(text string) { e.content = text }
func (e *fakeEditor) Content() string        { return e.content }
func (e *fakeEditor) Focus(on bool)          { e.focused = on }
func (e *fakeEditor) OnEdit(fn func())       { e.onEdit = fn }

// Type simulates a user edit.
func (e *fakeEditor) Type(text string) {
	e.content += text
	if e.onEdit != nil {
		e.onEdit()
	}
}

type chooseRequest struct {
	dir  string
	done func(string, bool)
}

type fakeChooser struct {
	requests []chooseRequest
}

func (c *fakeChooser) ChooseSave(dir string, done func(string, bool)) {
	c.requests = append(c.requests, chooseRequest{dir: dir, done: done})
}

func (c *fakeChooser) answer(t *testing.T, path string) {
	t.Helper()
	if len(c.requests) == 0 {
		t.Fatalf("no chooser request pending")
	}
	req := c.requests[0]
	c.requests = c.requests[1:]
	req.done(path, path != "")
}

type fakeEmulator struct {
	selected []string
}

func (e *fakeEmulator) SelectForEmulation(path string) {
	e.selected = append(e.selected, path)
}

type extSniffer map[string]bool

func (s extSniffer) IsBinary(path string) bool { return s[filepath.Ext(path)] }

type extLanguages map[string]string

func (l extLanguages) Detect(name string) string {
	if lang, ok := l[filepath.Ext(name)]; ok {
		return lang
	}
	return "plaintext"
}

type harness struct {
	place    *Place
	fs       afero.Fs
	chooser  *fakeChooser
	emulator *fakeEmulator
	editors  map[document.Identity]*fakeEditor
	reported []error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		fs:       afero.NewMemMapFs(),
		chooser:  &fakeChooser{},
		emulator: &fakeEmulator{},
		editors:  map[document.Identity]*fakeEditor{},
	}
	h.place = New(Options{
		Fs: h.fs,
		Editors: func(id document.Identity, _ document.Kind) Editor {
			ed := &fakeEditor{}
			h.editors[id] = ed
			return ed
		},
		Languages:  extLanguages{".py": "python", ".go": "go"},
		Sniffer:    extSniffer{".png": true},
		Chooser:    h.chooser,
		Emulator:   h.emulator,
		ChooserDir: "/work",
		Report:     func(err error) { h.reported = append(h.reported, err) },
		Log:        zaptest.NewLogger(t),
	})
	return h
}

func (h *harness) file(t *testing.T, path, content string) {
	t.Helper()
	if err := afero.WriteFile(h.fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func (h *harness) current() document.Identity {
	id, _ := h.place.Registry().Current()
	return id
}
