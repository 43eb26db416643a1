package cli

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/inovacc/studyplan/internal/timeutil"
)

const historyBarWidth = 20

// HistoryRows turns a history window into table rows, newest first, with
// a bar scaled to the window's best day.
func HistoryRows(window []studylog.Day) []table.Row {
	peak := studylog.Summarize(window).Max
	rows := make([]table.Row, 0, len(window))

	for i := len(window) - 1; i >= 0; i-- {
		d := window[i]

		day := ""
		if t, err := timeutil.ParseDateKey(d.Date); err == nil {
			day = timeutil.WeekdayOf(t).Short()
		}

		filled := 0
		if peak > 0 {
			filled = d.Minutes * historyBarWidth / peak
		}

		bar := make([]rune, historyBarWidth)
		for j := range bar {
			if j < filled {
				bar[j] = '█'
			} else {
				bar[j] = '·'
			}
		}

		rows = append(rows, table.Row{d.Date, day, strconv.Itoa(d.Minutes), HumanDuration(d.Minutes), string(bar)})
	}

	return rows
}

// HistoryModel is a scrollable table of the last days of study.
type HistoryModel struct {
	table   table.Model
	summary studylog.Summary
	days    int
	theme   Theme
}

func NewHistoryModel(log studylog.Log, days int, ref time.Time, theme Theme) HistoryModel {
	window := log.History(days, ref)

	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Day", Width: 3},
		{Title: "Minutes", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "", Width: historyBarWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(HistoryRows(window)),
		table.WithFocused(true),
		table.WithHeight(min(max(days, 1), 15)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return HistoryModel{
		table:   t,
		summary: studylog.Summarize(window),
		days:    days,
		theme:   theme,
	}
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Study history · last "+strconv.Itoa(m.days)+" days"),
		m.theme.Box.Render(m.table.View()),
		summaryLine(m.summary),
		helpStyle.Render("↑/↓ scroll • q quit"),
	)
}

// Summary returns the aggregate of the displayed window.
func (m HistoryModel) Summary() studylog.Summary {
	return m.summary
}
