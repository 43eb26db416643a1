package cmd

import (
	"fmt"
	"io"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/spf13/cobra"
)

var classCmd = &cobra.Command{
	Use:   "class",
	Short: "Manage the weekly timetable",
	Long: `Commands for managing the classes of the weekly timetable.

Classes are referenced by id; any unique prefix of the id is accepted.

Available Commands:
  add     Add a class
  edit    Change a class
  remove  Delete a class
  list    List classes`,
	Aliases: []string{"classes"},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// classFlags are shared by add and edit.
type classFlags struct {
	name  string
	day   string
	start string
	end   string
	color string
}

func (f *classFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Class name")
	cmd.Flags().StringVarP(&f.day, "day", "d", "", "Weekday (mon..sun, full name or 0-6)")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "Start time (HH:MM)")
	cmd.Flags().StringVarP(&f.end, "end", "e", "", "End time (HH:MM)")
	cmd.Flags().StringVarP(&f.color, "color", "c", "", "Block color (#RRGGBB, default picked from the name)")
}

// anyChanged reports whether any of the class flags was given.
func (f *classFlags) anyChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "day", "start", "end", "color"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}

	return false
}

func init() {
	rootCmd.AddCommand(classCmd)
}

// runClassForm opens the interactive class form, prefilled from existing
// when editing.
func runClassForm(w io.Writer, existing *model.ClassEntry) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	final, err := runProgram(cli.NewClassForm(app, existing))
	if err != nil {
		return err
	}

	form := final.(*cli.ClassFormModel)
	if form.Err != nil {
		return form.Err
	}

	if form.Cancelled() || form.Saved == nil {
		_, _ = fmt.Fprintln(w, "Cancelled.")
		return nil
	}

	printClassSaved(w, *form.Saved, app.Classes())

	return nil
}

func printClassSaved(w io.Writer, c model.ClassEntry, all []model.ClassEntry) {
	_, _ = fmt.Fprintf(w, "Saved %s: %s %s (%s)\n", shortID(c.ID), c.Weekday, c.Span(), c.Name)

	for _, other := range all {
		if other.ID != c.ID && other.Weekday == c.Weekday && other.Overlaps(c) {
			_, _ = fmt.Fprintf(w, "Note: overlaps %s (%s)\n", other.Name, other.Span())
		}
	}
}
