package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"codeplace/internal/tui/state"
)

var (
	faint    = lipgloss.NewStyle().Faint(true)
	warnText = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

const maxSuggestions = 8

type promptRequest struct {
	mode state.PromptMode
	dir  string
	done func(path string, ok bool)
}

// pathPrompt is a one-line path input with directory suggestions. It serves
// save-as requests from the workspace and the open-file command; requests
// queue up and are asked one at a time.
type pathPrompt struct {
	fs      afero.Fs
	input   textinput.Model
	queue   []promptRequest
	suggest []string
	msg     string
}

func newPathPrompt(fs afero.Fs) *pathPrompt {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 0
	return &pathPrompt{fs: fs, input: in}
}

// ChooseSave asks for a save path starting in dir.
func (p *pathPrompt) ChooseSave(dir string, done func(string, bool)) {
	p.enqueue(promptRequest{mode: state.SavePrompt, dir: dir, done: done})
}

// Open asks for an existing file starting in dir.
func (p *pathPrompt) Open(dir string, done func(string, bool)) {
	p.enqueue(promptRequest{mode: state.OpenPrompt, dir: dir, done: done})
}

func (p *pathPrompt) Active() bool { return len(p.queue) > 0 }

// Mode is the mode of the request being asked, or NoPrompt.
func (p *pathPrompt) Mode() state.PromptMode {
	if len(p.queue) == 0 {
		return state.NoPrompt
	}
	return p.queue[0].mode
}

func (p *pathPrompt) enqueue(r promptRequest) {
	p.queue = append(p.queue, r)
	if len(p.queue) == 1 {
		p.start()
	}
}

func (p *pathPrompt) start() {
	r := p.queue[0]
	value := ""
	if strings.TrimSpace(r.dir) != "" {
		value = expandPath(r.dir)
		if !strings.HasSuffix(value, string(filepath.Separator)) {
			value += string(filepath.Separator)
		}
	}
	p.msg = ""
	p.input.SetValue(value)
	p.input.CursorEnd()
	p.input.Focus()
	p.computeSuggestions()
}

// finish answers the head request and moves on to the next one.
func (p *pathPrompt) finish(path string, ok bool) {
	r := p.queue[0]
	p.queue = p.queue[1:]
	if len(p.queue) > 0 {
		p.start()
	} else {
		p.input.Blur()
		p.input.SetValue("")
		p.suggest = nil
	}
	r.done(path, ok)
}

// Update handles a key while the prompt is active.
func (p *pathPrompt) Update(msg tea.KeyMsg) tea.Cmd {
	if !p.Active() {
		return nil
	}
	switch msg.String() {
	case "enter":
		p.submit()
		return nil
	case "esc":
		p.finish("", false)
		return nil
	case "tab":
		if len(p.suggest) > 0 {
			p.input.SetValue(p.suggest[0])
			p.input.CursorEnd()
			p.computeSuggestions()
		}
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.msg = ""
	p.computeSuggestions()
	return cmd
}

func (p *pathPrompt) submit() {
	raw := strings.TrimSpace(p.input.Value())
	if raw == "" {
		p.finish("", false)
		return
	}
	path := expandPath(raw)
	info, err := p.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		p.msg = fmt.Sprintf("! is a directory: %s", path)
		return
	case err != nil && p.Mode() == state.OpenPrompt:
		p.msg = fmt.Sprintf("! not found: %s", path)
		return
	}
	p.finish(path, true)
}

func (p *pathPrompt) computeSuggestions() {
	// Provide simple directory-based suggestions for current input buffer
	in := p.input.Value()
	if strings.TrimSpace(in) == "" {
		p.suggest = nil
		return
	}
	expanded := expandPath(in)
	dir := expanded
	base := ""
	if fi, err := p.fs.Stat(expanded); err != nil || !fi.IsDir() || !strings.HasSuffix(in, string(filepath.Separator)) {
		dir = filepath.Dir(expanded)
		base = filepath.Base(expanded)
	}
	entries, err := afero.ReadDir(p.fs, dir)
	if err != nil {
		p.suggest = nil
		return
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if base != "" && !strings.HasPrefix(strings.ToLower(name), strings.ToLower(base)) {
			continue
		}
		cand := filepath.Join(dir, name)
		if e.IsDir() {
			cand += string(filepath.Separator)
		}
		out = append(out, cand)
		if len(out) >= maxSuggestions {
			break
		}
	}
	p.suggest = out
}

// View renders the prompt on two lines: the input, then suggestions or an error.
func (p *pathPrompt) View() string {
	label := "Open: "
	if p.Mode() == state.SavePrompt {
		label = "Save as: "
	}
	second := faint.Render("enter: confirm  tab: complete  esc: cancel")
	switch {
	case p.msg != "":
		second = warnText.Render(p.msg)
	case len(p.suggest) > 0:
		names := make([]string, 0, len(p.suggest))
		for _, s := range p.suggest {
			names = append(names, filepath.Base(s))
		}
		second = faint.Render(strings.Join(names, "  "))
	}
	return label + p.input.View() + "\n" + second
}

func expandPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if h, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(h, strings.TrimPrefix(p, "~"))
		}
	}
	p = os.ExpandEnv(p)
	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
	}
	return p
}
