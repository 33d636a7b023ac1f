package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/flextable/internal/flextable"
	"github.com/javiermolinar/flextable/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorBorder      lipgloss.Color
	colorWarning     lipgloss.Color
	colorSuccess     lipgloss.Color
	colorOverlayBg   lipgloss.Color

	colorTextOnSelection lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style
	CountStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Text inside table cells
	Cells flextable.CellStyles
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorBorder = palette.Border
	s.colorWarning = palette.Warning
	s.colorSuccess = palette.Success
	s.colorOverlayBg = palette.OverlayBg
	s.colorTextOnSelection = palette.TextOnSelection

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.CountStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorSuccess).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorWarning).
		Background(s.colorBg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		Padding(0, 1)

	s.Cells = flextable.CellStyles{
		Title: lipgloss.NewStyle().
			Foreground(s.colorFgMuted),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorFg),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorAccent),
		Control: lipgloss.NewStyle().
			Foreground(s.colorAccent),
		Focus: lipgloss.NewStyle().
			Bold(true).
			Foreground(s.colorTextOnSelection).
			Background(s.colorBgSelection),
		Menu: lipgloss.NewStyle().
			Foreground(s.colorFg).
			Background(s.colorBgHighlight),
		Overlay: lipgloss.NewStyle().
			Faint(true).
			Foreground(s.colorFgMuted),
	}

	return s
}

// TableStyle is the table style the theme implies: grid lines in the
// border color and disabled rows on the overlay background.
func (s *Styles) TableStyle() flextable.TableStyle {
	return flextable.TableStyle{
		BorderColor:     s.colorBorder,
		BackgroundColor: s.colorOverlayBg,
	}
}
