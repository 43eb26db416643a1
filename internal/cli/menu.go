package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Menu actions returned by MainMenuModel.GetChoice.
const (
	ActionDashboard = "dashboard"
	ActionWeek      = "week"
	ActionAddClass  = "class-add"
	ActionTodos     = "todos"
	ActionHistory   = "history"
	ActionTheme     = "theme"
	ActionExit      = "exit"
)

type menuItem struct {
	title       string
	description string
	action      string
}

func (i menuItem) FilterValue() string { return i.title }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.title)

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

type MainMenuModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)

		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(menuItem)
			if ok {
				m.choice = i.action
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m MainMenuModel) View() string {
	if m.choice != "" {
		return ""
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	return "\n" + m.list.View()
}

// GetChoice returns the selected action, or "" when the user quit.
func (m MainMenuModel) GetChoice() string {
	return m.choice
}

// NewMainMenu builds the top-level menu. dark picks the label of the
// theme toggle.
func NewMainMenu(dark bool) MainMenuModel {
	themeTitle := "Switch to Dark Theme"
	if dark {
		themeTitle = "Switch to Light Theme"
	}

	items := []list.Item{
		menuItem{title: "Dashboard", description: "Live overview of today", action: ActionDashboard},
		menuItem{title: "Weekly Timetable", description: "Show the week grid", action: ActionWeek},
		menuItem{title: "Add Class", description: "Add a class to the timetable", action: ActionAddClass},
		menuItem{title: "To-do List", description: "Manage tasks", action: ActionTodos},
		menuItem{title: "Study History", description: "Minutes studied per day", action: ActionHistory},
		menuItem{title: themeTitle, description: "Toggle the color palette", action: ActionTheme},
		menuItem{title: "Exit", description: "Exit studyplan", action: ActionExit},
	}

	const defaultWidth = 20

	l := list.New(items, itemDelegate{}, defaultWidth, 12)
	l.Title = "studyplan - Study Planner"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return MainMenuModel{list: l}
}
