package cmd

import (
	"fmt"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [minutes]",
	Short: "Show or set the daily study goal",
	Long: `Show the daily study goal, or set it. The goal is between 1 and 1440
minutes; durations like 2h are accepted.

Examples:
  studyplan goal
  studyplan goal 150
  studyplan goal 2h30m`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(cmd *cobra.Command, args []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if len(args) == 0 {
		_, _ = fmt.Fprintf(w, "Daily goal: %s\n", cli.HumanDuration(app.Settings().Goal))
		return nil
	}

	minutes, err := parseMinutes(args[0])
	if err != nil {
		return err
	}

	if err := app.SetGoal(int(minutes + 0.5)); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Daily goal set to %s\n", cli.HumanDuration(app.Settings().Goal))

	return nil
}
