package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/studyplan/internal/core"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-03-04 is a Monday.
var monday0945 = time.Date(2024, 3, 4, 9, 45, 0, 0, time.Local)

func class(name string, wd timeutil.Weekday, start, end string) model.ClassEntry {
	return model.ClassEntry{
		Name:    name,
		Weekday: wd,
		Start:   timeutil.MustParseTime(start),
		End:     timeutil.MustParseTime(end),
	}
}

func trio() []model.ClassEntry {
	return []model.ClassEntry{
		class("Math", timeutil.Monday, "09:00", "10:00"),
		class("Lit", timeutil.Monday, "09:30", "10:30"),
		class("PE", timeutil.Monday, "10:15", "11:00"),
		class("Chem", timeutil.Tuesday, "08:00", "09:30"),
	}
}

func setupTestApp(t *testing.T, classes ...model.ClassEntry) *core.App {
	t.Helper()

	app, err := core.Load(store.NewMemory(), core.Options{
		Logger: zerolog.Nop(),
		Clock:  func() time.Time { return monday0945 },
	})
	require.NoError(t, err)

	for _, c := range classes {
		_, err := app.AddClass(c)
		require.NoError(t, err)
	}

	return app
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}

	_, ok := cmd().(tea.QuitMsg)

	return ok
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{-5, "0m"},
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{1440, "24h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanDuration(tt.in), "HumanDuration(%d)", tt.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Math", truncate("Math", 4))
	assert.Equal(t, "Ma…", truncate("Math", 3))
	assert.Equal(t, "M", truncate("Math", 1))
	assert.Equal(t, "", truncate("Math", 0))
}

func TestBar(t *testing.T) {
	theme := NewTheme(false)

	assert.Equal(t, 10, len([]rune(Bar(theme, 50, 10))))
	assert.Equal(t, strings.Repeat("█", 10), Bar(theme, 150, 10))
	assert.Equal(t, strings.Repeat("░", 4), Bar(theme, -3, 4))
	assert.Empty(t, Bar(theme, 50, 0))
}

func TestBuildOverview(t *testing.T) {
	log := studylog.Log{"2024-03-06": 90, "2024-03-04": 30}

	o := BuildOverview(trio(), log, model.Settings{Goal: 120}, monday0945, 6)

	require.NotNil(t, o.Current)
	assert.Equal(t, "Math", o.Current.Name)
	assert.Equal(t, 75, o.Progress)
	assert.Equal(t, 15, o.Remaining)

	require.NotNil(t, o.Next)
	assert.Equal(t, "PE", o.Next.Name)
	assert.False(t, o.NextIsTomorrow)

	assert.Len(t, o.Today, 3)
	require.Len(t, o.Tomorrow, 1)
	assert.Equal(t, "Chem", o.Tomorrow[0].Name)

	assert.Equal(t, 30, o.StudyToday)
	assert.Equal(t, 25, o.GoalPct)
	assert.Equal(t, [7]int{30, 0, 90, 0, 0, 0, 0}, o.Week)
	assert.Equal(t, 120, o.WeekTotal)
	assert.Equal(t, 2, o.Longest)
}

func TestBuildOverview_NextTomorrow(t *testing.T) {
	late := time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local)

	o := BuildOverview(trio(), studylog.Log{}, model.DefaultSettings(), late, 6)

	assert.Nil(t, o.Current)
	require.NotNil(t, o.Next)
	assert.Equal(t, "Chem", o.Next.Name)
	assert.True(t, o.NextIsTomorrow)
}

func TestRenderWeek(t *testing.T) {
	out := RenderWeek(trio(), NewTheme(false), WeekOptions{
		Days:        []timeutil.Weekday{timeutil.Monday, timeutil.Tuesday},
		SlotMinutes: 30,
		ColumnWidth: 12,
		Today:       -1,
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// bounds are 06:00-19:00: a header plus 26 half-hour rows
	require.Len(t, lines, 27)
	assert.Contains(t, lines[0], "Mon")
	assert.Contains(t, lines[0], "Tue")
	assert.True(t, strings.HasPrefix(lines[1], "06:00"))
	assert.True(t, strings.HasPrefix(lines[25], "18:00"))

	// Math starts at 09:00, six rows below 06:00
	assert.True(t, strings.HasPrefix(lines[7], "09:00"))
	assert.Contains(t, lines[7], "Mat")
	assert.Contains(t, out, "Chem")
}

func TestRenderWeek_EmptyUsesDefaultBounds(t *testing.T) {
	out := RenderWeek(nil, NewTheme(true), WeekOptions{SlotMinutes: 60, ColumnWidth: 5, Today: timeutil.Monday})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1+18)

	for _, wd := range timeutil.Weekdays() {
		assert.Contains(t, lines[0], wd.Short())
	}
}

func TestRenderWeek_ColumnWidthBounded(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{name: "narrow", width: 1, want: MinColumnWidth},
		{name: "regular", width: 12, want: 12},
		{name: "huge", width: 100000, want: MaxColumnWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderWeek(nil, NewTheme(false), WeekOptions{
				Days:        []timeutil.Weekday{timeutil.Monday},
				SlotMinutes: 60,
				ColumnWidth: tt.width,
				Today:       -1,
			})

			header := strings.Split(out, "\n")[0]
			assert.Equal(t, hourLabelWidth+1+tt.want, lipgloss.Width(header))
		})
	}
}

func TestRenderWeek_SkipsInvalid(t *testing.T) {
	bad := class("Ghost", timeutil.Monday, "09:00", "10:00")
	bad.Start = timeutil.Invalid

	out := RenderWeek([]model.ClassEntry{bad}, NewTheme(false), WeekOptions{SlotMinutes: 30, ColumnWidth: 10, Today: -1})
	assert.NotContains(t, out, "Ghost")
}

func TestDashboard(t *testing.T) {
	app := setupTestApp(t, trio()...)

	m := NewDashboard(app, time.Minute, 6)
	require.NotNil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "Math")
	assert.Contains(t, view, "75%")
	assert.Contains(t, view, "PE")
	assert.Contains(t, view, "Chem")

	next, cmd := m.Update(runes("+"))
	assert.Nil(t, cmd)
	assert.Equal(t, 15, app.StudyMinutes(monday0945))

	next, _ = next.Update(runes("-"))
	next, _ = next.Update(runes("-"))
	assert.Equal(t, 0, app.StudyMinutes(monday0945))

	_, cmd = next.Update(tickMsg(monday0945))
	assert.NotNil(t, cmd)

	next, _ = next.Update(runes("t"))
	assert.True(t, app.Settings().Dark)
	assert.True(t, next.(DashboardModel).theme.Dark)

	_, cmd = next.Update(runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestClassForm_Add(t *testing.T) {
	app := setupTestApp(t)

	m := NewClassForm(app, nil)
	m.inputs[fieldName].SetValue("Math")
	m.inputs[fieldWeekday].SetValue("mon")
	m.inputs[fieldStart].SetValue("09:00")
	m.inputs[fieldEnd].SetValue("10:00")
	m.focusIndex = len(m.inputs)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))

	require.NotNil(t, m.Saved)
	assert.Equal(t, "Math", m.Saved.Name)
	require.Len(t, app.Classes(), 1)
	assert.Contains(t, m.View(), "Saved Math")
}

func TestClassForm_ValidationKeepsFormOpen(t *testing.T) {
	app := setupTestApp(t)

	m := NewClassForm(app, nil)
	m.inputs[fieldName].SetValue("Math")
	m.inputs[fieldWeekday].SetValue("mon")
	m.inputs[fieldStart].SetValue("10:00")
	m.inputs[fieldEnd].SetValue("09:00")
	m.focusIndex = len(m.inputs)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, isQuit(cmd))
	assert.Nil(t, m.Saved)
	assert.NotEmpty(t, m.fieldErrs["end"])
	assert.Empty(t, app.Classes())
	assert.Contains(t, m.View(), "end must be after start")
}

func TestClassForm_ParseErrors(t *testing.T) {
	m := NewClassForm(setupTestApp(t), nil)
	m.inputs[fieldName].SetValue("Math")
	m.inputs[fieldWeekday].SetValue("someday")
	m.inputs[fieldStart].SetValue("9am")
	m.inputs[fieldEnd].SetValue("10:00")

	_, errs := m.Entry()
	assert.Contains(t, errs, "weekday")
	assert.Contains(t, errs, "start")
	assert.NotContains(t, errs, "end")
}

func TestClassForm_Edit(t *testing.T) {
	app := setupTestApp(t, trio()...)
	existing := app.Classes()[0]

	m := NewClassForm(app, &existing)
	assert.Equal(t, "Math", m.inputs[fieldName].Value())
	assert.Equal(t, "09:00", m.inputs[fieldStart].Value())

	m.inputs[fieldName].SetValue("Algebra")
	require.True(t, m.submit())

	got, err := app.Class(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra", got.Name)
	assert.Len(t, app.Classes(), 4)
}

func TestClassForm_Cancel(t *testing.T) {
	m := NewClassForm(setupTestApp(t), nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Cancelled())
}

func TestTodoList(t *testing.T) {
	app := setupTestApp(t)

	var m tea.Model = NewTodoList(app)
	assert.Contains(t, m.View(), "Nothing to do")

	m, _ = m.Update(runes("a"))
	m, _ = m.Update(runes("read ch. 3"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, app.Todos(), 1)
	assert.Equal(t, "read ch. 3", app.Todos()[0].Text)
	assert.Contains(t, m.View(), "read ch. 3")

	m, _ = m.Update(runes("x"))
	assert.True(t, app.Todos()[0].Done)

	m, _ = m.Update(runes("c"))
	assert.Empty(t, app.Todos())

	_, cmd := m.Update(runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestHistoryRows(t *testing.T) {
	window := []studylog.Day{
		{Date: "2024-03-03", Minutes: 0},
		{Date: "2024-03-04", Minutes: 60},
		{Date: "2024-03-05", Minutes: 120},
	}

	rows := HistoryRows(window)
	require.Len(t, rows, 3)

	assert.Equal(t, "2024-03-05", rows[0][0], "newest first")
	assert.Equal(t, "Tue", rows[0][1])
	assert.Equal(t, "120", rows[0][2])
	assert.Equal(t, "2h", rows[0][3])
	assert.Equal(t, strings.Repeat("█", historyBarWidth), rows[0][4])
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("·", 10), rows[1][4])
	assert.Equal(t, "Sun", rows[2][1])
}

func TestHistoryModel(t *testing.T) {
	log := studylog.Log{"2024-03-04": 60}

	m := NewHistoryModel(log, 7, monday0945, NewTheme(false))
	assert.Equal(t, 60, m.Summary().Total)
	assert.Equal(t, 1, m.Summary().ActiveDays)
	assert.Contains(t, m.View(), "last 7 days")

	_, cmd := m.Update(runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestMainMenu(t *testing.T) {
	m := NewMainMenu(false)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, ActionDashboard, next.(MainMenuModel).GetChoice())

	next, _ = NewMainMenu(true).Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ActionWeek, next.(MainMenuModel).GetChoice())

	next, cmd = NewMainMenu(false).Update(runes("q"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, next.(MainMenuModel).GetChoice())
	assert.Equal(t, "Goodbye!\n", next.View())
}
