package cmd

import (
	"github.com/spf13/cobra"
)

var classEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a class",
	Long: `Change a class of the timetable. Only the given flags are changed.

Without flags on a terminal an interactive form opens prefilled with the
class. The change is rejected as a whole when the result is not valid.

Examples:
  studyplan class edit 3f2a --end 10:30
  studyplan class edit 3f2a --name "Linear Algebra" --day tue
  studyplan class edit 3f2a`,
	Aliases: []string{"update"},
	Args:    cobra.ExactArgs(1),
	RunE:    runClassEdit,
}

var classEditFlags classFlags

func init() {
	classCmd.AddCommand(classEditCmd)

	classEditFlags.register(classEditCmd)
}

func runClassEdit(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	app, err := currentApp()
	if err != nil {
		return err
	}

	existing, err := app.Class(args[0])
	if err != nil {
		return err
	}

	if !classEditFlags.anyChanged(cmd) && isInteractive() {
		return runClassForm(w, &existing)
	}

	c, err := classFromFlags(existing, classEditFlags, cmd, false)
	if err != nil {
		return err
	}

	saved, err := app.UpdateClass(c)
	if err != nil {
		return err
	}

	printClassSaved(w, saved, app.Classes())

	return nil
}
