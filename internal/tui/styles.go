// Package tui holds the shared styling and output-mode detection for the
// rowpick list widget. The widget itself lives in the list and rowitem
// subpackages.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/rowpick/internal/config"
)

// Row markers. The marker column keeps selection visible when colors are stripped.
const (
	MarkerSelected   = "*"
	MarkerUnselected = " "
	FocusIndicator   = ">"
	NoFocusIndicator = " "
)

// Palette is the set of colors a Styles is built from.
type Palette struct {
	Selected   lipgloss.Color
	Unselected lipgloss.Color
	Text       lipgloss.Color
}

// PaletteFromConfig converts configured colors. Colors are assumed validated.
func PaletteFromConfig(c config.ColorsConfig) Palette {
	return Palette{
		Selected:   lipgloss.Color(c.Selected),
		Unselected: lipgloss.Color(c.Unselected),
		Text:       lipgloss.Color(c.Text),
	}
}

// DefaultPalette matches config.DefaultConfig.
func DefaultPalette() Palette {
	return PaletteFromConfig(config.DefaultConfig().Colors)
}

// Styles are the lipgloss styles used to draw the list.
type Styles struct {
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Header     lipgloss.Style
	Focus      lipgloss.Style
	Status     lipgloss.Style
}

// NewStyles builds Styles from a palette.
func NewStyles(p Palette) Styles {
	row := lipgloss.NewStyle().Foreground(p.Text).PaddingRight(1)

	return Styles{
		Selected:   row.Background(p.Selected).Bold(true),
		Unselected: row.Background(p.Unselected),
		Header:     lipgloss.NewStyle().Bold(true).Underline(true),
		Focus:      lipgloss.NewStyle().Foreground(p.Selected).Bold(true),
		Status:     lipgloss.NewStyle().Faint(true),
	}
}

// Row returns the fill style for a row.
func (s Styles) Row(selected bool) lipgloss.Style {
	if selected {
		return s.Selected
	}
	return s.Unselected
}
