package workspace

import (
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"codeplace/internal/document"
)

const filePerm = 0o644

// SaveCurrent saves the current screen. With nothing open it does nothing.
func (p *Place) SaveCurrent() error {
	s := p.registry.CurrentScreen()
	if s == nil {
		return nil
	}
	return p.saveScreen(s, false)
}

// SaveAll saves every screen in tab order. New files each ask the chooser.
func (p *Place) SaveAll() error {
	var err error
	for _, s := range p.registry.Screens() {
		err = multierr.Append(err, p.saveScreen(s, false))
	}
	return err
}

// AutoSave writes dirty Code screens. It never opens the chooser.
func (p *Place) AutoSave() error {
	var err error
	for _, s := range p.registry.Screens() {
		err = multierr.Append(err, p.saveScreen(s, true))
	}
	return err
}

// saveScreen runs the save state machine for s.
func (p *Place) saveScreen(s *Screen, auto bool) error {
	switch s.kind {
	case document.Code:
		if !s.dirty {
			return nil
		}
		return p.write(s)
	case document.NewFile:
		if auto || s.saving {
			return nil
		}
		if p.chooser == nil {
			return fmt.Errorf("save %s: %w: no file chooser", s.id, ErrPersistence)
		}
		s.saving = true
		dir := p.chooseDir
		p.chooser.ChooseSave(dir, func(path string, ok bool) {
			s.saving = false
			if !ok {
				p.log.Debug("save cancelled", zap.String("id", string(s.id)))
				return
			}
			if cur, ok := p.registry.Lookup(s.id); !ok || cur != s {
				p.log.Debug("save answer for closed screen dropped", zap.String("id", string(s.id)))
				return
			}
			p.warn(p.saveNewAs(s, path))
		})
		return nil
	default:
		// Welcome and Unsupported have nothing to write
		return nil
	}
}

// saveNewAs gives a NewFile screen its first real path.
func (p *Place) saveNewAs(s *Screen, path string) error {
	if cur, ok := p.registry.Lookup(s.id); !ok || cur != s {
		return fmt.Errorf("save %s: %w", s.id, ErrUnknownIdentity)
	}
	target := document.FromPath(path)
	if target == "" {
		return nil
	}
	if _, taken := p.registry.Lookup(target); taken {
		// the path is already open elsewhere; show that one instead of clobbering it
		if err := p.registry.SetCurrent(target); err != nil {
			return err
		}
		return fmt.Errorf("save %s as %s: %w", s.id, target, ErrDuplicateIdentity)
	}
	if err := p.registry.Rekey(s.id, target); err != nil {
		return err
	}
	// Rekey made it a Code screen: write unconditionally. A failed write keeps
	// it dirty so the next save retries the same path.
	if err := p.write(s); err != nil {
		s.setDirty(true)
		return err
	}
	p.detectLanguage(s)
	return nil
}

func (p *Place) write(s *Screen) error {
	s.saving = true
	defer func() { s.saving = false }()
	if err := afero.WriteFile(p.fs, s.id.Path(), []byte(s.Content()), filePerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPersistence, s.id, err)
	}
	s.setDirty(false)
	p.log.Info("file saved", zap.String("path", s.id.Path()))
	return nil
}
