package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var todoClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all done to-dos",
	Long: `Delete every to-do marked as done. Open to-dos are kept in order.

Examples:
  studyplan todo clear`,
	Args: cobra.NoArgs,
	RunE: runTodoClear,
}

func init() {
	todoCmd.AddCommand(todoClearCmd)
}

func runTodoClear(cmd *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	n, err := app.ClearDone()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d done to-do(s).\n", n)

	return nil
}
