package cmd

import (
	"github.com/spf13/cobra"
)

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the to-do list",
	Long: `Print the to-do list in insertion order.

Examples:
  studyplan todo list
  studyplan todo list --json`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runTodoList,
}

var todoListJSON bool

func init() {
	todoCmd.AddCommand(todoListCmd)

	todoListCmd.Flags().BoolVar(&todoListJSON, "json", false, "Output as JSON")
}

func runTodoList(cmd *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	return printTodos(cmd.OutOrStdout(), app.Todos(), todoListJSON)
}
