package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/studyplan/internal/core"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/inovacc/studyplan/internal/timeutil"
)

// studyStep is how much +/- change today's study minutes.
const studyStep = 15

type tickMsg time.Time

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// DashboardModel is the live overview: current class with progress, next
// class, today's study against the goal, the week's study bars and the
// tomorrow preview.
type DashboardModel struct {
	app           *core.App
	theme         Theme
	refresh       time.Duration
	tomorrowLimit int

	now      time.Time
	progress progress.Model
	width    int
	height   int
	err      error
}

// NewDashboard builds the dashboard over app. refresh is the re-render
// interval.
func NewDashboard(app *core.App, refresh time.Duration, tomorrowLimit int) DashboardModel {
	return DashboardModel{
		app:           app,
		theme:         NewTheme(app.Settings().Dark),
		refresh:       refresh,
		tomorrowLimit: tomorrowLimit,
		now:           app.Now(),
		progress:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:         80,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tickCmd(m.refresh)
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=":
			m.adjustStudy(studyStep)
		case "-", "_":
			m.adjustStudy(-studyStep)
		case "t":
			if err := m.app.SetDark(!m.theme.Dark); err != nil {
				m.err = err
			} else {
				m.theme = NewTheme(m.app.Settings().Dark)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.now = m.app.Now()

		return m, tickCmd(m.refresh)
	}

	return m, nil
}

func (m *DashboardModel) adjustStudy(delta int) {
	m.now = m.app.Now()

	current := m.app.StudyMinutes(m.now)
	if _, err := m.app.SetStudyMinutes(m.now, float64(current+delta)); err != nil {
		m.err = err
	} else {
		m.err = nil
	}
}

func (m DashboardModel) View() string {
	o := BuildOverview(m.app.Classes(), m.app.StudyLog(), m.app.Settings(), m.now, m.tomorrowLimit)
	t := m.theme

	boxW := max(m.width/2-2, 30)

	header := t.Header.Render(fmt.Sprintf("studyplan · %s · %s",
		o.Weekday, m.now.Format("Jan 2, 2006 15:04")))

	left := lipgloss.JoinVertical(lipgloss.Left,
		t.Box.Width(boxW).Render(m.nowSection(o)),
		t.Box.Width(boxW).Render(m.studySection(o, boxW-4)),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		t.Box.Width(boxW).Render(weekSection(o, t, boxW-4)),
		t.Box.Width(boxW).Render(tomorrowSection(o, t)),
	)

	var body string
	if m.width >= 2*(boxW+2) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	footer := t.Muted.Render(fmt.Sprintf("+/- %dm study • t theme • q quit • refreshes every %s",
		studyStep, m.refresh))

	parts := []string{header, body}
	if m.err != nil {
		parts = append(parts, t.Bad.Render("Error: "+m.err.Error()))
	}

	parts = append(parts, footer)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m DashboardModel) nowSection(o Overview) string {
	t := m.theme

	var sb strings.Builder

	sb.WriteString(t.Accent.Render("NOW") + "\n")

	if o.Current != nil {
		c := o.Current
		_, _ = fmt.Fprintf(&sb, "%s  %s\n", t.Good.Render(c.Name), t.Muted.Render(c.Span()))

		bar := m.progress
		bar.Width = 24
		_, _ = fmt.Fprintf(&sb, "%s %d%%  %s left\n", bar.ViewAs(float64(o.Progress)/100), o.Progress, HumanDuration(o.Remaining))
	} else {
		sb.WriteString(t.Muted.Render("No class right now") + "\n")
	}

	sb.WriteString("\n" + t.Accent.Render("NEXT") + "\n")

	if o.Next != nil {
		when := "today"
		if o.NextIsTomorrow {
			when = "tomorrow"
		}

		_, _ = fmt.Fprintf(&sb, "%s  %s %s", o.Next.Name, t.Muted.Render(o.Next.Span()), when)
	} else {
		sb.WriteString(t.Muted.Render("Nothing scheduled"))
	}

	return sb.String()
}

func (m DashboardModel) studySection(o Overview, width int) string {
	t := m.theme

	style := t.Warn
	if o.GoalPct >= 100 {
		style = t.Good
	}

	return fmt.Sprintf("%s\n%s / %s  %s\n%s",
		t.Accent.Render("TODAY'S STUDY"),
		style.Render(HumanDuration(o.StudyToday)),
		HumanDuration(o.Goal),
		style.Render(fmt.Sprintf("%d%%", o.GoalPct)),
		Bar(t, o.GoalPct, max(width, 10)),
	)
}

func weekSection(o Overview, t Theme, width int) string {
	var sb strings.Builder

	sb.WriteString(t.Accent.Render("THIS WEEK") + "\n")

	peak := o.Week[o.Longest]
	barW := max(width-14, 5)

	for i, mins := range o.Week {
		pct := 0
		if peak > 0 {
			pct = mins * 100 / peak
		}

		day := timeutil.Weekday(i).Short()
		if timeutil.Weekday(i) == o.Weekday {
			day = t.Accent.Render(day)
		}

		_, _ = fmt.Fprintf(&sb, "%s %s %s\n", day, Bar(t, pct, barW), HumanDuration(mins))
	}

	_, _ = fmt.Fprintf(&sb, "Total %s", HumanDuration(o.WeekTotal))

	if peak > 0 {
		_, _ = fmt.Fprintf(&sb, " • best %s", timeutil.Weekday(o.Longest))
	}

	return sb.String()
}

func tomorrowSection(o Overview, t Theme) string {
	var sb strings.Builder

	sb.WriteString(t.Accent.Render("TOMORROW · "+o.Weekday.Next().String()) + "\n")

	if len(o.Tomorrow) == 0 {
		sb.WriteString(t.Muted.Render("No classes"))

		return sb.String()
	}

	for i, c := range o.Tomorrow {
		if i > 0 {
			sb.WriteString("\n")
		}

		_, _ = fmt.Fprintf(&sb, "%s  %s", t.Muted.Render(c.Span()), c.Name)
	}

	return sb.String()
}

// summaryLine renders a one-line Summary for history views.
func summaryLine(s studylog.Summary) string {
	return fmt.Sprintf("Total %s • Avg %s/day • Best %s • %d active days",
		HumanDuration(s.Total), HumanDuration(int(s.Average+0.5)), HumanDuration(s.Max), s.ActiveDays)
}
