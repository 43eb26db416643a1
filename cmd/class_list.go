package cmd

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/schedule"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/spf13/cobra"
)

var classListCmd = &cobra.Command{
	Use:   "list",
	Short: "List classes",
	Long: `List the classes of the timetable ordered by weekday and start time.

Examples:
  studyplan class list
  studyplan class list --day mon,tue
  studyplan class list --json`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runClassList,
}

var (
	classListJSON bool
	classListDays string
)

func init() {
	classCmd.AddCommand(classListCmd)

	classListCmd.Flags().BoolVar(&classListJSON, "json", false, "Output as JSON")
	classListCmd.Flags().StringVar(&classListDays, "day", "", "Comma separated weekdays to list (default all)")
}

func runClassList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	app, err := currentApp()
	if err != nil {
		return err
	}

	days, err := parseDays(classListDays)
	if err != nil {
		return err
	}

	var classes []model.ClassEntry

	for _, c := range sortedClasses(app.Classes()) {
		if len(days) == 0 || slices.Contains(days, c.Weekday) {
			classes = append(classes, c)
		}
	}

	if classListJSON {
		if classes == nil {
			classes = []model.ClassEntry{}
		}

		return printJSON(out, classes)
	}

	if len(classes) == 0 {
		_, _ = fmt.Fprintln(out, "No classes configured.")
		_, _ = fmt.Fprintln(out, "\nCreate one with: studyplan class add")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "ID\tDAY\tTIME\tNAME\tCOLOR")
	_, _ = fmt.Fprintln(w, "--\t---\t----\t----\t-----")

	for _, c := range classes {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", shortID(c.ID), c.Weekday.Short(), c.Span(), c.Name, c.Color)
	}

	return w.Flush()
}

// sortedClasses orders by weekday, then by start time as the schedule does.
func sortedClasses(classes []model.ClassEntry) []model.ClassEntry {
	var out []model.ClassEntry

	for _, wd := range timeutil.Weekdays() {
		out = append(out, schedule.ClassesForDay(classes, wd)...)
	}

	return out
}
