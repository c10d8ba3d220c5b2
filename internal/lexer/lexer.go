// Package lexer maps file names to language tokens using chroma's lexer registry.
package lexer

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/lexers"
)

// PlainText is returned when nothing matches.
const PlainText = "plaintext"

// Detector resolves a language token for a file name. Overrides map a file
// extension (".kv" or "kv") or an exact base name ("Makefile") to a token and
// win over the registry.
type Detector struct {
	overrides map[string]string
}

// New builds a Detector. Override keys are matched case-insensitively.
func New(overrides map[string]string) *Detector {
	d := &Detector{overrides: make(map[string]string, len(overrides))}
	for k, v := range overrides {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || strings.TrimSpace(v) == "" {
			continue
		}
		d.overrides[k] = strings.TrimSpace(v)
	}
	return d
}

// Detect returns the token for name.
func (d *Detector) Detect(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return PlainText
	}
	if tok, ok := d.overrides[strings.ToLower(base)]; ok {
		return tok
	}
	if ext := strings.ToLower(filepath.Ext(base)); ext != "" {
		if tok, ok := d.overrides[ext]; ok {
			return tok
		}
		if tok, ok := d.overrides[ext[1:]]; ok {
			return tok
		}
	}
	l := lexers.Match(base)
	if l == nil {
		return PlainText
	}
	return l.Config().Name
}
