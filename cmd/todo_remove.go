package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var todoRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a to-do",
	Long: `Delete a to-do whether it is done or not.

Examples:
  studyplan todo rm 9c1e`,
	Aliases: []string{"rm", "delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoRemove,
}

func init() {
	todoCmd.AddCommand(todoRemoveCmd)
}

func runTodoRemove(cmd *cobra.Command, args []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	item, err := app.RemoveTodo(args[0])
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", item.Text)

	return nil
}
