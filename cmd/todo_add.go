package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var todoAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a to-do",
	Long: `Add an open to-do at the end of the list. Several words are joined
with spaces.

Examples:
  studyplan todo add Read chapter 4
  studyplan todo add "Email the lab partner"`,
	Aliases: []string{"new"},
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTodoAdd,
}

func init() {
	todoCmd.AddCommand(todoAddCmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	item, err := app.AddTodo(strings.Join(args, " "))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s\n", shortID(item.ID), item.Text)

	return nil
}
