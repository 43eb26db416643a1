// Package cli provides the terminal user interface components for studyplan.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Menu: main interactive menu for selecting a view
//   - Dashboard: live overview, re-derived on a tea.Tick
//   - ClassForm: add/edit form with per-field validation messages
//   - TodoList: inline add, toggle and delete
//   - History: table of study minutes per day
//
// [RenderWeek] and [BuildOverview] are plain functions so commands can
// print the same views without starting a program.
//
// # Styling
//
// [NewTheme] returns the dark or light palette selected by the user's
// theme setting. Form and menu styles are package-level variables.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
