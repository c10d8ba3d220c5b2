package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"codeplace/internal/config"
	"codeplace/internal/document"
	"codeplace/internal/lexer"
	"codeplace/internal/sniff"
	"codeplace/internal/tui/state"
	"codeplace/internal/tui/util"
	"codeplace/internal/tui/views/unsupported"
	"codeplace/internal/tui/views/welcome"
	"codeplace/internal/tui/widgets/diff"
	"codeplace/internal/tui/widgets/editor"
	"codeplace/internal/tui/widgets/helpoverlay"
	"codeplace/internal/tui/widgets/statusbar"
	"codeplace/internal/tui/widgets/tabbar"
	"codeplace/internal/tui/widgets/tagchips"
	"codeplace/internal/workspace"
)

// Options configures Run.
type Options struct {
	Config config.Config
	// Files are opened in order on start. With none, the welcome tab is shown
	// unless Config.Editor.Welcome is off.
	Files []string
	Fs    afero.Fs
	Log   *zap.Logger
}

// Run starts the editor and blocks until the user quits.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// ===== Model =====

type autoSaveMsg time.Time

type model struct {
	cfg config.Config
	fs  afero.Fs
	log *zap.Logger

	place  *workspace.Place
	prompt *pathPrompt
	target *runTarget
	keys   appKeyMap

	ui    state.UIState
	bar   string
	spans []tabbar.Span

	// last mouse row, used to decide whether a dropped path landed on the editor
	mouseY    int
	mouseSeen bool
}

func newModel(opts Options) *model {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	m := &model{
		cfg:    cfg,
		fs:     fs,
		log:    log,
		prompt: newPathPrompt(fs),
		target: &runTarget{},
		ui: state.UIState{
			MinCol:   20,
			TabWidth: cfg.Editor.TabWidth,
			NoColor:  util.NoColor(cfg.UI.NoColor),
		},
	}
	app, placeKeys := newKeyMaps(cfg.Keys)
	m.keys = app
	m.place = workspace.New(workspace.Options{
		Fs: fs,
		Editors: func(document.Identity, document.Kind) workspace.Editor {
			return newBufferEditor(cfg.Editor)
		},
		Languages:  lexer.New(cfg.Languages),
		Sniffer:    sniff.New(fs),
		Chooser:    m.prompt,
		Emulator:   m.target,
		Keys:       placeKeys,
		ChooserDir: cfg.Files.ChooserDir,
		Report:     m.report,
		Log:        log,
	})

	if len(opts.Files) == 0 && cfg.Editor.Welcome {
		m.report(m.place.OpenWelcome())
	}
	for _, f := range opts.Files {
		if ok, _ := afero.Exists(fs, f); !ok {
			m.ui = state.SetNotice(m.ui, "! not found: "+f)
			continue
		}
		m.report(m.place.OpenFile(f))
	}
	m.place.Flush()
	m.sync()
	return m
}

func (m *model) Init() tea.Cmd {
	return m.autoSaveTick()
}

func (m *model) autoSaveTick() tea.Cmd {
	if m.cfg.Files.AutoSave <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.Files.AutoSave, func(t time.Time) tea.Msg { return autoSaveMsg(t) })
}

// report shows err in the status bar. Errors are already logged by the workspace.
func (m *model) report(err error) {
	if err == nil {
		return
	}
	m.ui = state.SetNotice(m.ui, "! "+err.Error())
}

// Update handles one event, then lets the workspace finish deferred work.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	m.place.Focus(!m.prompt.Active())
	m.place.Flush()
	m.sync()
	return m, cmd
}

func (m *model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		return nil
	case autoSaveMsg:
		m.log.Debug("autosave", zap.Time("at", time.Time(msg)))
		if err := m.place.AutoSave(); err != nil {
			m.report(err)
		}
		return m.autoSaveTick()
	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.forward(msg)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	m.mouseY = msg.Y
	m.mouseSeen = true
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
		return
	}
	i, ok := tabbar.Hit(m.spans, msg.X)
	if !ok {
		return
	}
	tabs := m.place.Registry().Group().Controls()
	if i < len(tabs) {
		tabs[i].Select()
	}
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.prompt.Active() {
		return m.prompt.Update(msg)
	}
	overlay := m.ui.ShowHelp || m.ui.ShowDiff
	if overlay {
		switch {
		case msg.String() == "esc":
			m.ui = state.CloseOverlays(m.ui)
			return nil
		case m.ui.ShowDiff && key.Matches(msg, m.keys.DiffView):
			m.ui = state.ToggleView(m.ui)
			return nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.New):
		_, err := m.place.NewFile()
		m.report(err)
		return nil
	case key.Matches(msg, m.keys.Open):
		m.prompt.Open(m.openDir(), func(path string, ok bool) {
			if ok {
				m.report(m.place.OpenFile(path))
			}
		})
		return nil
	case key.Matches(msg, m.keys.SaveAll):
		m.report(m.place.SaveAll())
		return nil
	case key.Matches(msg, m.keys.Welcome):
		m.report(m.place.OpenWelcome())
		return nil
	case key.Matches(msg, m.keys.Help):
		m.ui = state.ToggleHelp(m.ui)
		return nil
	case key.Matches(msg, m.keys.Diff):
		if s := m.place.Registry().CurrentScreen(); s != nil && s.Editor() != nil {
			m.ui = state.ToggleDiff(m.ui)
		}
		return nil
	case key.Matches(msg, m.keys.CopyPath):
		m.copyPath()
		return nil
	}

	if m.place.HandleKey(msg.String()) {
		return nil
	}
	if overlay {
		return nil
	}
	if msg.Paste && m.handleDrop(string(msg.Runes)) {
		return nil
	}
	return m.forward(msg)
}

// handleDrop treats a pasted path to an existing file as a file dropped on
// the terminal. Anything else is left for the editor.
func (m *model) handleDrop(text string) bool {
	path := strings.TrimSpace(text)
	path = strings.Trim(path, `"'`)
	path = strings.TrimPrefix(path, "file://")
	if path == "" || strings.ContainsRune(path, '\n') {
		return false
	}
	info, err := m.fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	m.report(m.place.HandleDroppedFile(path, m.inEditorRegion()))
	return true
}

func (m *model) inEditorRegion() bool {
	if !m.mouseSeen {
		return true
	}
	top := editor.Top()
	return m.mouseY >= top && m.mouseY < top+editor.Height(m.ui)
}

func (m *model) openDir() string {
	if s := m.place.Registry().CurrentScreen(); s != nil {
		if dir := s.ID().Dir(); dir != "" && s.Kind() == document.Code {
			return dir
		}
	}
	return m.cfg.Files.ChooserDir
}

func (m *model) copyPath() {
	s := m.place.Registry().CurrentScreen()
	if s == nil || s.Kind() == document.Welcome || s.Kind() == document.NewFile {
		m.ui = state.SetNotice(m.ui, "! no path to copy")
		return
	}
	if err := clipboard.WriteAll(s.ID().Path()); err != nil {
		m.report(fmt.Errorf("copy path: %w", err))
		return
	}
	m.log.Debug("path copied", zap.String("path", s.ID().Path()))
	m.ui = state.SetNotice(m.ui, "Copied "+s.ID().Path())
}

// forward passes msg to the current editor, if any.
func (m *model) forward(msg tea.Msg) tea.Cmd {
	s := m.place.Registry().CurrentScreen()
	if s == nil {
		return nil
	}
	if ed, ok := s.Editor().(*bufferEditor); ok {
		return ed.Update(msg)
	}
	return nil
}

// sync mirrors the workspace into the UI state and lays the editors out.
func (m *model) sync() {
	reg := m.place.Registry()
	var doc state.Document
	if s := reg.CurrentScreen(); s != nil {
		doc = state.Document{
			Label:    s.Tab().Label(),
			Kind:     s.Kind().String(),
			Language: s.Language(),
			Modified: s.Dirty(),
			Saving:   s.State() == workspace.Saving,
		}
		if s.Kind() != document.Welcome {
			doc.Path = s.ID().Path()
		}
	}
	m.ui = state.Select(m.ui, doc, reg.Len())
	m.ui = state.OpenPromptFor(m.ui, m.prompt.Mode())
	if m.target.path != m.ui.RunTarget {
		m.ui = state.SetRunTarget(m.ui, m.target.path)
	}

	controls := reg.Group().Controls()
	tabs := make([]tabbar.Tab, 0, len(controls))
	for _, t := range controls {
		tabs = append(tabs, tabbar.Tab{Label: t.Label(), Selected: t.Selected(), Modified: t.Modified()})
	}
	m.bar, m.spans = tabbar.View(tabs, m.ui.Width, m.ui.NoColor)

	h := editor.Height(m.ui)
	for _, s := range reg.Screens() {
		if ed, ok := s.Editor().(*bufferEditor); ok {
			ed.SetSize(m.ui.Width, h)
		}
	}
}

// ===== Views =====

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.bar + "\n")
	b.WriteString(editor.NewEditor().View(m.ui, m.body()) + "\n")
	if m.prompt.Active() {
		b.WriteString(m.prompt.View() + "\n")
	}
	content := ""
	if s := m.place.Registry().CurrentScreen(); s != nil {
		content = s.Content()
	}
	chips := tagchips.View(util.ComputeTags(m.ui, content), m.ui.NoColor)
	b.WriteString(statusbar.NewStatusBar().View(m.ui, chips))
	return b.String()
}

func (m *model) body() string {
	if m.ui.ShowHelp {
		return helpoverlay.NewHelpOverlay().View(m.ui, []helpoverlay.Section{
			{Title: "Document", Bindings: m.place.Shortcuts()},
			{Title: "Editor", Bindings: m.keys.list()},
		})
	}
	s := m.place.Registry().CurrentScreen()
	if s == nil {
		return faint.Render("No open documents.") + "\n\n" + welcome.Render(m.keys.list())
	}
	if m.ui.ShowDiff {
		disk, err := m.place.DiskContent(s.ID())
		if err != nil {
			return warnText.Render(err.Error())
		}
		return diff.NewDiffView().View(m.ui, disk, s.Content()) + "\n" + faint.Render("v: toggle view  esc: close")
	}
	switch s.Kind() {
	case document.Welcome:
		return welcome.Render(append(m.keys.list(), m.place.Shortcuts()...))
	case document.Unsupported:
		return unsupported.Render(s.ID().Path())
	}
	if ed, ok := s.Editor().(*bufferEditor); ok {
		return ed.View()
	}
	return ""
}
