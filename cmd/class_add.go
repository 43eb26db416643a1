package cmd

import (
	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/spf13/cobra"
)

var classAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a class",
	Long: `Add a weekly class to the timetable.

Without arguments on a terminal an interactive form opens. The color is
picked from the class name when not given.

Examples:
  studyplan class add
  studyplan class add Math --day mon --start 09:00 --end 10:00
  studyplan class add "Lab work" -d thu -s 14:00 -e 17:00 -c "#10B981"`,
	Aliases: []string{"new"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runClassAdd,
}

var classAddFlags classFlags

func init() {
	classCmd.AddCommand(classAddCmd)

	classAddFlags.register(classAddCmd)
}

func runClassAdd(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if len(args) == 0 && !classAddFlags.anyChanged(cmd) && isInteractive() {
		return runClassForm(w, nil)
	}

	app, err := currentApp()
	if err != nil {
		return err
	}

	name := classAddFlags.name
	if len(args) == 1 {
		name = args[0]
	}

	c, err := classFromFlags(model.ClassEntry{Name: name}, classAddFlags, cmd, true)
	if err != nil {
		return err
	}

	saved, err := app.AddClass(c)
	if err != nil {
		return err
	}

	printClassSaved(w, saved, app.Classes())

	return nil
}

// classFromFlags applies the flags to base. With all set, day, start and
// end are required; otherwise only changed flags are applied.
func classFromFlags(base model.ClassEntry, f classFlags, cmd *cobra.Command, all bool) (model.ClassEntry, error) {
	changed := func(name string) bool {
		return all || cmd.Flags().Changed(name)
	}

	c := base

	if cmd.Flags().Changed("name") {
		c.Name = f.name
	}

	if changed("day") {
		wd, err := timeutil.ParseWeekday(f.day)
		if err != nil {
			return c, err
		}

		c.Weekday = wd
	}

	if changed("start") {
		start, err := timeutil.ParseTime(f.start)
		if err != nil {
			return c, err
		}

		c.Start = start
	}

	if changed("end") {
		end, err := timeutil.ParseTime(f.end)
		if err != nil {
			return c, err
		}

		c.End = end
	}

	if changed("color") {
		c.Color = f.color
	}

	return c, nil
}
