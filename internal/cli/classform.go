package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/studyplan/internal/core"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/timeutil"
)

const fmtV1 = " %s\n %s\n\n"

var (
	focusedButton = focusedStyle.Render("[ Save ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Save"))
)

const (
	fieldName = iota
	fieldWeekday
	fieldStart
	fieldEnd
	fieldColor
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name:",
	"Weekday (mon..sun):",
	"Start (HH:MM):",
	"End (HH:MM):",
	"Color (#RRGGBB, empty for automatic):",
}

// fieldKeys maps validation error keys back to form rows.
var fieldKeys = [fieldCount]string{"name", "weekday", "start", "end", "color"}

// ClassFormModel adds a class, or edits one when built with an existing
// entry. Validation failures keep the form open with per-field messages.
type ClassFormModel struct {
	app        *core.App
	editing    *model.ClassEntry
	focusIndex int
	inputs     []textinput.Model
	fieldErrs  map[string]string

	Saved *model.ClassEntry
	Err   error
	quit  bool
}

// NewClassForm returns an empty form, or one prefilled from existing.
func NewClassForm(app *core.App, existing *model.ClassEntry) *ClassFormModel {
	m := &ClassFormModel{
		app:     app,
		editing: existing,
		inputs:  make([]textinput.Model, fieldCount),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 80

		switch i {
		case fieldName:
			t.Placeholder = "Math"
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case fieldWeekday:
			t.Placeholder = "mon"
			t.CharLimit = 9
		case fieldStart:
			t.Placeholder = "09:00"
			t.CharLimit = 5
		case fieldEnd:
			t.Placeholder = "10:00"
			t.CharLimit = 5
		case fieldColor:
			t.Placeholder = "#4F46E5"
			t.CharLimit = 7
		}

		m.inputs[i] = t
	}

	if existing != nil {
		m.inputs[fieldName].SetValue(existing.Name)
		m.inputs[fieldWeekday].SetValue(strings.ToLower(existing.Weekday.Short()))
		m.inputs[fieldStart].SetValue(existing.Start.String())
		m.inputs[fieldEnd].SetValue(existing.End.String())
		m.inputs[fieldColor].SetValue(existing.Color)
	}

	return m
}

func (m *ClassFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ClassFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true

			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if m.submit() {
					return m, tea.Quit
				}

				return m, nil
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.refocus()
		}
	}

	return m, m.updateInputs(msg)
}

func (m *ClassFormModel) refocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle

			continue
		}

		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return tea.Batch(cmds...)
}

func (m *ClassFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only focused inputs react to keys.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

// Entry parses the form fields. Parse failures are reported per field.
func (m *ClassFormModel) Entry() (model.ClassEntry, map[string]string) {
	errs := map[string]string{}

	var c model.ClassEntry
	if m.editing != nil {
		c = *m.editing
	}

	c.Name = m.inputs[fieldName].Value()
	c.Color = m.inputs[fieldColor].Value()

	wd, err := timeutil.ParseWeekday(m.inputs[fieldWeekday].Value())
	if err != nil {
		errs["weekday"] = err.Error()
	}

	c.Weekday = wd

	for _, f := range []struct {
		idx int
		key string
		dst *timeutil.TimeOfDay
	}{
		{fieldStart, "start", &c.Start},
		{fieldEnd, "end", &c.End},
	} {
		v, err := timeutil.ParseTime(m.inputs[f.idx].Value())
		if err != nil {
			errs[f.key] = err.Error()
		}

		*f.dst = v
	}

	return c, errs
}

// submit saves the class and reports whether the form is done.
func (m *ClassFormModel) submit() bool {
	c, errs := m.Entry()
	if len(errs) > 0 {
		m.fieldErrs = errs

		return false
	}

	var (
		saved model.ClassEntry
		err   error
	)

	if m.editing != nil {
		saved, err = m.app.UpdateClass(c)
	} else {
		saved, err = m.app.AddClass(c)
	}

	var ve *core.ValidationError
	switch {
	case err == nil:
		m.Saved = &saved
		m.fieldErrs = nil

		return true
	case errors.As(err, &ve):
		m.fieldErrs = ve.Fields

		return false
	default:
		m.Err = err

		return true
	}
}

// Cancelled reports whether the user left without saving.
func (m *ClassFormModel) Cancelled() bool {
	return m.quit
}

func (m *ClassFormModel) View() string {
	if m.Saved != nil {
		return successStyle.Render(fmt.Sprintf("\n  ✓ Saved %s (%s %s)\n\n",
			m.Saved.Name, m.Saved.Weekday, m.Saved.Span()))
	}

	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	title := "Add Class"
	if m.editing != nil {
		title = "Edit Class"
	}

	s := headerStyle.Render(title) + "\n"
	s += blurredStyle.Render("Fill in the fields and press Tab to navigate") + "\n\n"

	for i, in := range m.inputs {
		field := in.View()
		if msg := m.fieldErrs[fieldKeys[i]]; msg != "" {
			field += "\n " + errorStyle.Render("↳ "+msg)
		}

		s += fmt.Sprintf(fmtV1, blurredStyle.Render(fieldLabels[i]), field)
	}

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n %s\n\n", *button)
	s += blurredStyle.Render(" tab/shift+tab: navigate • enter: save • esc: cancel")

	return s
}
