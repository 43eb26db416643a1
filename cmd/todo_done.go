package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var todoDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a to-do as done",
	Long: `Mark a to-do as done.

Examples:
  studyplan todo done 9c1e`,
	Aliases: []string{"check"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoDone,
}

var todoUndoCmd = &cobra.Command{
	Use:   "undo <id>",
	Short: "Mark a to-do as open again",
	Long: `Mark a to-do as open again.

Examples:
  studyplan todo undo 9c1e`,
	Aliases: []string{"uncheck", "reopen"},
	Args:    cobra.ExactArgs(1),
	RunE:    runTodoUndo,
}

func init() {
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoUndoCmd)
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	return setTodoDone(cmd, args[0], true)
}

func runTodoUndo(cmd *cobra.Command, args []string) error {
	return setTodoDone(cmd, args[0], false)
}

func setTodoDone(cmd *cobra.Command, ref string, done bool) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	item, err := app.SetTodoDone(ref, done)
	if err != nil {
		return err
	}

	state := "open"
	if item.Done {
		state = "done"
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", shortID(item.ID), item.Text, state)

	return nil
}
