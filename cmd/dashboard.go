package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/studyplan/internal/cli"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the live dashboard",
	Long: `Open a full-screen dashboard showing the current class and its
progress, the next class, today's study against the goal, the week's study
minutes and tomorrow's classes. The view refreshes on the configured
refresh interval.

Keys:
  +/-   add or remove 15 minutes of study for today
  t     toggle the dark and light palette
  q     quit

Examples:
  studyplan dashboard
  STUDYPLAN_REFRESH_INTERVAL=10s studyplan dashboard`,
	Aliases: []string{"dash"},
	RunE:    runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	cfg := currentConfig()

	_, err = runProgram(cli.NewDashboard(app, cfg.RefreshInterval, cfg.TomorrowLimit), tea.WithAltScreen())

	return err
}
