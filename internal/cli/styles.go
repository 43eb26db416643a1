package cli

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme groups the lipgloss styles for one palette.
type Theme struct {
	Dark bool

	Title   lipgloss.Style
	Header  lipgloss.Style
	Box     lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
	BarFull lipgloss.Style
	BarRest lipgloss.Style

	// BlockText is the foreground for text drawn on class colors
	BlockText lipgloss.Color
}

// NewTheme returns the dark or light palette.
func NewTheme(dark bool) Theme {
	var (
		fg, muted, accent, border, headerBg lipgloss.Color
		good, warn, bad, rest               lipgloss.Color
	)

	if dark {
		fg, muted, accent = "#FAFAFA", "#626262", "#BD93F9"
		border, headerBg = "#874BFD", "#4A90E2"
		good, warn, bad, rest = "#04B575", "#F7DC6F", "#FF6B6B", "#3C3C3C"
	} else {
		fg, muted, accent = "#1F2937", "#9CA3AF", "#7C3AED"
		border, headerBg = "#7D56F4", "#2563EB"
		good, warn, bad, rest = "#047857", "#B45309", "#DC2626", "#E5E7EB"
	}

	return Theme{
		Dark: dark,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(border).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(headerBg).
			Padding(0, 1).
			MarginBottom(1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(fg).
			Padding(0, 1),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Accent:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Good:      lipgloss.NewStyle().Foreground(good).Bold(true),
		Warn:      lipgloss.NewStyle().Foreground(warn).Bold(true),
		Bad:       lipgloss.NewStyle().Foreground(bad).Bold(true),
		BarFull:   lipgloss.NewStyle().Foreground(good),
		BarRest:   lipgloss.NewStyle().Foreground(rest),
		BlockText: "#FFFFFF",
	}
}

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle  = focusedStyle
	noStyle      = lipgloss.NewStyle()
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
