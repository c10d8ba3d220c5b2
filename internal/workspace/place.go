// Package workspace keeps the set of open documents, their tabs and their
// on-disk state in step.
//
// Everything here runs on the host's single event loop. Commands mutate the
// Registry synchronously and may defer follow-up work onto a TaskQueue; the
// host calls Place.Flush once the event has been handled.
package workspace

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"codeplace/internal/document"
)

const placeScope = "place"

// Options configures a Place. Fs and Editors are required; the remaining
// collaborators are optional.
type Options struct {
	Fs        afero.Fs
	Editors   EditorFactory
	Languages LanguageDetector
	Sniffer   BinarySniffer
	Chooser   FileChooser
	Emulator  EmulationTarget
	Keys      KeyMap
	// ChooserDir is where save dialogs for new files start.
	ChooserDir string
	// Report receives non-fatal errors raised outside a direct call
	// (load failures, saves completed by the chooser).
	Report func(error)
	Log    *zap.Logger
}

// Place is the orchestrator: it turns user actions into Registry operations.
type Place struct {
	fs        afero.Fs
	editors   EditorFactory
	languages LanguageDetector
	sniffer   BinarySniffer
	chooser   FileChooser
	emulator  EmulationTarget
	keymap    KeyMap
	chooseDir string
	report    func(error)
	log       *zap.Logger

	tasks    *TaskQueue
	keys     *ShortcutTable
	registry *Registry
	untitled int
	focused  bool
}

// New builds a Place with an empty registry. The place starts focused.
func New(opts Options) *Place {
	p := &Place{
		fs:        opts.Fs,
		editors:   opts.Editors,
		languages: opts.Languages,
		sniffer:   opts.Sniffer,
		chooser:   opts.Chooser,
		emulator:  opts.Emulator,
		keymap:    opts.Keys,
		chooseDir: opts.ChooserDir,
		report:    opts.Report,
		log:       opts.Log,
		tasks:     &TaskQueue{},
		keys:      NewShortcutTable(),
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	if !p.keymap.Save.Enabled() && !p.keymap.Cycle.Enabled() && !p.keymap.Close.Enabled() {
		p.keymap = DefaultKeyMap()
	}
	if p.emulator == nil {
		p.keymap.Emulate.SetEnabled(false)
	}
	p.registry = NewRegistry(NewGroup(), p.tasks, p.keys, p.loadContent, p.log)

	p.keys.Bind(placeScope, p.keymap.Cycle, func() bool {
		p.CycleNext()
		return true
	})
	p.keys.Bind(placeScope, p.keymap.Close, func() bool {
		if err := p.CloseCurrent(); err != nil {
			p.warn(err)
		}
		return true
	})
	p.Focus(true)
	return p
}

// Registry exposes the screen registry for reading.
func (p *Place) Registry() *Registry { return p.registry }

// UntitledCount is the counter behind Untitled-<n> names.
func (p *Place) UntitledCount() int { return p.untitled }

// Flush runs the actions deferred while handling the last event.
func (p *Place) Flush() int { return p.tasks.Drain() }

// Pending is the number of deferred actions waiting for Flush.
func (p *Place) Pending() int { return p.tasks.Len() }

// Focus enables or disables the place-wide shortcuts.
func (p *Place) Focus(on bool) {
	if on == p.focused {
		return
	}
	p.focused = on
	if on {
		p.keys.Activate(placeScope)
		// the current screen's shortcuts take precedence
		if s := p.registry.CurrentScreen(); s != nil {
			p.keys.Activate(s.scope())
		}
		return
	}
	p.keys.Deactivate(placeScope)
	if s := p.registry.CurrentScreen(); s != nil {
		p.keys.Deactivate(s.scope())
	}
}

// Focused reports whether the place receives shortcuts.
func (p *Place) Focused() bool { return p.focused }

// HandleKey dispatches a key press to the active shortcut scopes and
// reports whether it was consumed.
func (p *Place) HandleKey(k string) bool {
	if !p.focused {
		return false
	}
	return p.keys.Dispatch(k)
}

// Shortcuts lists the bindings that are live right now.
func (p *Place) Shortcuts() []key.Binding { return p.keys.Bindings() }

// OpenFile opens path, or makes its screen current if it is already open.
// Paths that do not exist are ignored.
func (p *Place) OpenFile(path string) error {
	id := document.FromPath(path)
	if id == "" {
		return nil
	}
	info, err := p.fs.Stat(id.Path())
	if err != nil || info.IsDir() {
		p.log.Debug("open ignored", zap.String("path", id.Path()))
		return nil
	}
	if _, ok := p.registry.Lookup(id); ok {
		return p.registry.SetCurrent(id)
	}
	kind := document.Code
	if p.sniffer != nil && p.sniffer.IsBinary(id.Path()) {
		kind = document.Unsupported
	}
	if _, err := p.open(id, kind); err != nil {
		return err
	}
	p.log.Info("file opened", zap.String("path", id.Path()), zap.Stringer("kind", kind))
	return nil
}

// NewFile opens an empty buffer under the first free Untitled-<n> name.
// The counter moves on every attempt, including collisions.
func (p *Place) NewFile() (document.Identity, error) {
	var id document.Identity
	for {
		p.untitled++
		id = document.Untitled(p.untitled)
		if _, taken := p.registry.Lookup(id); !taken {
			break
		}
	}
	if _, err := p.open(id, document.NewFile); err != nil {
		return "", err
	}
	return id, nil
}

// OpenWelcome shows the welcome view, creating it on first use.
func (p *Place) OpenWelcome() error {
	if _, ok := p.registry.Lookup(document.WelcomeID); ok {
		return p.registry.SetCurrent(document.WelcomeID)
	}
	_, err := p.open(document.WelcomeID, document.Welcome)
	return err
}

// open creates the screen, binds its shortcuts and makes it current.
func (p *Place) open(id document.Identity, kind document.Kind) (*Screen, error) {
	var ed Editor
	if kind.Editable() && p.editors != nil {
		ed = p.editors(id, kind)
	}
	s, err := p.registry.Open(id, kind, ed)
	if err != nil {
		return nil, err
	}
	if kind.Editable() {
		p.detectLanguage(s)
	}
	p.bindScreen(s)
	if err := p.registry.SetCurrent(id); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Place) bindScreen(s *Screen) {
	if s.kind == document.Unsupported || s.kind == document.Welcome {
		return
	}
	p.keys.Bind(s.scope(), p.keymap.Save, func() bool {
		if err := p.saveScreen(s, false); err != nil {
			p.warn(err)
		}
		return true
	})
	p.keys.Bind(s.scope(), p.keymap.Emulate, func() bool {
		p.SelectForEmulation(s.id)
		return true
	})
}

func (p *Place) detectLanguage(s *Screen) {
	if p.languages == nil {
		return
	}
	s.language = p.languages.Detect(s.id.Path())
}

// loadContent fills a Code screen from disk. Missing or unreadable files
// leave the screen empty and raise a warning.
func (p *Place) loadContent(s *Screen) {
	if s.editor == nil {
		return
	}
	data, err := afero.ReadFile(p.fs, s.id.Path())
	if err != nil {
		s.editor.SetContent("")
		s.setDirty(false)
		p.warn(fmt.Errorf("%w: %s: %w", ErrLoad, s.id, err))
		return
	}
	s.editor.Focus(false)
	s.editor.SetContent(string(data))
	s.setDirty(false)
	if p.registry.current == s.id {
		s.editor.Focus(true)
	}
	p.log.Debug("content loaded", zap.String("path", s.id.Path()), zap.Int("bytes", len(data)))
}

// CloseTab closes the screen for id. A never-saved Untitled buffer gives its
// number back; closing the current screen selects its cyclic successor.
func (p *Place) CloseTab(id document.Identity) error {
	s, ok := p.registry.Lookup(id)
	if !ok {
		return fmt.Errorf("close %s: %w", id, ErrUnknownIdentity)
	}
	cur, _ := p.registry.Current()
	wasCurrent := cur == id
	next, hasNext := p.registry.Next(id)
	if next == id {
		hasNext = false
	}
	kind := s.kind

	if err := p.registry.Remove(id); err != nil {
		return err
	}
	if kind == document.NewFile && id.IsUntitled() {
		if exists, _ := afero.Exists(p.fs, id.Path()); !exists {
			p.untitled--
		}
	}
	p.log.Info("tab closed", zap.String("id", string(id)))

	if wasCurrent && hasNext {
		return p.registry.SetCurrent(next)
	}
	return nil
}

// CloseCurrent closes the current screen. With nothing open it does nothing.
func (p *Place) CloseCurrent() error {
	id, ok := p.registry.Current()
	if !ok {
		return nil
	}
	return p.CloseTab(id)
}

// CycleNext moves to the next screen in tab order, wrapping around.
func (p *Place) CycleNext() {
	cur, _ := p.registry.Current()
	next, ok := p.registry.Next(cur)
	if !ok {
		return
	}
	if err := p.registry.SetCurrent(next); err != nil {
		p.warn(err)
	}
}

// Select makes id current.
func (p *Place) Select(id document.Identity) error {
	return p.registry.SetCurrent(id)
}

// HandleDroppedFile opens a file dropped onto the editor. Drops outside the
// editor region, and drops of paths that do not exist, are ignored.
func (p *Place) HandleDroppedFile(path string, inRegion bool) error {
	if !inRegion || document.FromPath(path) == "" {
		return nil
	}
	p.log.Debug("file dropped", zap.String("path", path))
	return p.OpenFile(path)
}

// SelectForEmulation hands the screen's file to the emulation target. Paths
// that no longer exist are only logged.
func (p *Place) SelectForEmulation(id document.Identity) {
	if p.emulator == nil {
		return
	}
	exists, _ := afero.Exists(p.fs, id.Path())
	if !exists || id.IsUntitled() || id == document.WelcomeID {
		p.log.Info("emulator: invalid file selected", zap.String("path", id.Path()))
		return
	}
	p.emulator.SelectForEmulation(id.Path())
	p.log.Info("emulator: file selected", zap.String("path", id.Path()))
}

// DiskContent reads the on-disk text behind id.
func (p *Place) DiskContent(id document.Identity) (string, error) {
	if _, ok := p.registry.Lookup(id); !ok {
		return "", fmt.Errorf("read %s: %w", id, ErrUnknownIdentity)
	}
	data, err := afero.ReadFile(p.fs, id.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %s: %w", ErrLoad, id, err)
	}
	return string(data), nil
}

func (p *Place) warn(err error) {
	if err == nil {
		return
	}
	p.log.Warn("workspace", zap.Error(err))
	if p.report != nil {
		p.report(err)
	}
}
