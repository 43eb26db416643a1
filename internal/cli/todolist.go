package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/studyplan/internal/core"
)

// TodoListModel shows the to-do list with inline add, toggle and delete.
type TodoListModel struct {
	app    *core.App
	theme  Theme
	cursor int
	adding bool
	input  textinput.Model
	err    error
}

func NewTodoList(app *core.App) TodoListModel {
	in := textinput.New()
	in.Placeholder = "What needs doing?"
	in.CharLimit = 500
	in.Cursor.Style = cursorStyle
	in.PromptStyle = focusedStyle

	return TodoListModel{
		app:   app,
		theme: NewTheme(app.Settings().Dark),
		input: in,
	}
}

func (m TodoListModel) Init() tea.Cmd {
	return nil
}

func (m TodoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)

			return m, cmd
		}

		return m, nil
	}

	if m.adding {
		return m.updateAdding(key)
	}

	todos := m.app.Todos()

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(todos)-1 {
			m.cursor++
		}

	case "a", "n":
		m.adding = true
		m.input.SetValue("")

		return m, m.input.Focus()

	case " ", "enter", "x":
		if len(todos) > 0 {
			_, m.err = m.app.ToggleTodo(todos[m.cursor].ID)
		}

	case "d", "delete":
		if len(todos) > 0 {
			_, m.err = m.app.RemoveTodo(todos[m.cursor].ID)
			m.clampCursor()
		}

	case "c":
		_, m.err = m.app.ClearDone()
		m.clampCursor()
	}

	return m, nil
}

func (m TodoListModel) updateAdding(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.adding = false
		m.input.Blur()

		return m, nil

	case "enter":
		m.adding = false
		m.input.Blur()

		if _, err := m.app.AddTodo(m.input.Value()); err != nil {
			m.err = err
		} else {
			m.err = nil
			m.cursor = len(m.app.Todos()) - 1
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)

	return m, cmd
}

func (m *TodoListModel) clampCursor() {
	m.cursor = max(0, min(m.cursor, len(m.app.Todos())-1))
}

func (m TodoListModel) View() string {
	t := m.theme
	todos := m.app.Todos()

	var sb strings.Builder

	sb.WriteString(t.Title.Render("To-do") + "\n\n")

	if len(todos) == 0 {
		sb.WriteString(t.Muted.Render("  Nothing to do. Press a to add.") + "\n")
	}

	open := 0

	for i, td := range todos {
		mark := "[ ]"
		text := td.Text

		if td.Done {
			mark = t.Good.Render("[x]")
			text = t.Muted.Render(text)
		} else {
			open++
		}

		line := fmt.Sprintf("%s %s", mark, text)
		if i == m.cursor && !m.adding {
			sb.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			sb.WriteString(itemStyle.Render(line))
		}

		sb.WriteString("\n")
	}

	if m.adding {
		sb.WriteString("\n" + m.input.View() + "\n")
	}

	if m.err != nil {
		sb.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	sb.WriteString("\n" + t.Muted.Render(fmt.Sprintf("%d open • a add • space toggle • d delete • c clear done • q quit", open)))

	return sb.String()
}
