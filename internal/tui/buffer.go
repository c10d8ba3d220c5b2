package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"codeplace/internal/config"
)

// bufferEditor adapts a textarea to the workspace editor contract.
type bufferEditor struct {
	area   textarea.Model
	onEdit func()
}

func newBufferEditor(cfg config.EditorConfig) *bufferEditor {
	area := textarea.New()
	area.ShowLineNumbers = cfg.LineNumbers
	area.CharLimit = 0
	area.MaxHeight = 0
	area.Prompt = ""
	area.Placeholder = ""
	return &bufferEditor{area: area}
}

// SetContent replaces the text without counting as an edit.
func (e *bufferEditor) SetContent(text string) { e.area.SetValue(text) }

func (e *bufferEditor) Content() string { return e.area.Value() }

func (e *bufferEditor) Focus(on bool) {
	if on {
		e.area.Focus()
		return
	}
	e.area.Blur()
}

func (e *bufferEditor) OnEdit(fn func()) { e.onEdit = fn }

func (e *bufferEditor) SetSize(width, height int) {
	e.area.SetWidth(width)
	e.area.SetHeight(height)
}

// Update feeds msg to the textarea and reports a user edit when the text changed.
func (e *bufferEditor) Update(msg tea.Msg) tea.Cmd {
	before := e.area.Value()
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	if e.onEdit != nil && e.area.Value() != before {
		e.onEdit()
	}
	return cmd
}

func (e *bufferEditor) View() string { return e.area.View() }
