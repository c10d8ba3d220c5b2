package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor reports whether styling is off, either by config or by $NO_COLOR.
func NoColor(explicit bool) bool {
	return explicit || os.Getenv("NO_COLOR") != ""
}

// Palette names colors by what they mark in the editor.
type Palette struct {
	Accent   lipgloss.Color // selected tab, new documents
	Unsaved  lipgloss.Color
	Busy     lipgloss.Color
	Locked   lipgloss.Color
	Added    lipgloss.Color
	Removed  lipgloss.Color
	Dim      lipgloss.Color
	Dimmer   lipgloss.Color
	OnAccent lipgloss.Color
	OnBusy   lipgloss.Color
}

func DefaultPalette() Palette {
	return Palette{
		Accent:   lipgloss.Color("#5F87D7"),
		Unsaved:  lipgloss.Color("#D75F5F"),
		Busy:     lipgloss.Color("#D7AF5F"),
		Locked:   lipgloss.Color("#8787AF"),
		Added:    lipgloss.Color("#5FAF5F"),
		Removed:  lipgloss.Color("#D75F5F"),
		Dim:      lipgloss.Color("#808080"),
		Dimmer:   lipgloss.Color("#585858"),
		OnAccent: lipgloss.Color("#FFFFFF"),
		OnBusy:   lipgloss.Color("#1C1C1C"),
	}
}

// Chip is a bold padded label on bg.
func (p Palette) Chip(bg lipgloss.Color) lipgloss.Style {
	fg := p.OnAccent
	if bg == p.Busy {
		fg = p.OnBusy
	}
	return lipgloss.NewStyle().Padding(0, 1).Bold(true).Background(bg).Foreground(fg)
}
