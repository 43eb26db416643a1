package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a class",
	Long: `Delete a class from the timetable.

Examples:
  studyplan class remove 3f2a
  studyplan class rm 3f2a --force`,
	Aliases: []string{"rm", "delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runClassRemove,
}

var classRemoveForce bool

func init() {
	classCmd.AddCommand(classRemoveCmd)

	classRemoveCmd.Flags().BoolVarP(&classRemoveForce, "force", "f", false, "Skip confirmation")
}

func runClassRemove(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	app, err := currentApp()
	if err != nil {
		return err
	}

	c, err := app.Class(args[0])
	if err != nil {
		return err
	}

	if !classRemoveForce && isInteractive() {
		prompt := fmt.Sprintf("Delete %s on %s %s? [y/N]: ", c.Name, c.Weekday, c.Span())
		if !promptConfirm(w, prompt) {
			_, _ = fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if _, err := app.RemoveClass(c.ID); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Class '%s' deleted.\n", c.Name)

	return nil
}
