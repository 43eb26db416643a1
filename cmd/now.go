package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/model"
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print what is happening now",
	Long: `Print the current class with its progress, the next class, today's
study minutes against the goal and tomorrow's classes.

Examples:
  studyplan now
  studyplan now --json`,
	Aliases: []string{"status"},
	Args:    cobra.NoArgs,
	RunE:    runNow,
}

var nowJSON bool

func init() {
	rootCmd.AddCommand(nowCmd)

	nowCmd.Flags().BoolVar(&nowJSON, "json", false, "Output as JSON")
}

func runNow(cmd *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	o := cli.BuildOverview(app.Classes(), app.StudyLog(), app.Settings(), app.Now(), currentConfig().TomorrowLimit)

	if nowJSON {
		return printJSON(cmd.OutOrStdout(), o)
	}

	printOverview(cmd.OutOrStdout(), o)

	return nil
}

func printOverview(w io.Writer, o cli.Overview) {
	_, _ = fmt.Fprintf(w, "%s, %s\n\n", o.Weekday, o.At.Format("2006-01-02 15:04"))

	if o.Current != nil {
		_, _ = fmt.Fprintf(w, "Now:      %s (%s) %d%%, %s left\n",
			o.Current.Name, o.Current.Span(), o.Progress, cli.HumanDuration(o.Remaining))
	} else {
		_, _ = fmt.Fprintln(w, "Now:      no class")
	}

	switch {
	case o.Next == nil:
		_, _ = fmt.Fprintln(w, "Next:     nothing scheduled")
	case o.NextIsTomorrow:
		_, _ = fmt.Fprintf(w, "Next:     %s tomorrow at %s\n", o.Next.Name, o.Next.Start)
	default:
		_, _ = fmt.Fprintf(w, "Next:     %s at %s\n", o.Next.Name, o.Next.Start)
	}

	_, _ = fmt.Fprintf(w, "Study:    %s of %s (%d%%)\n",
		cli.HumanDuration(o.StudyToday), cli.HumanDuration(o.Goal), o.GoalPct)
	_, _ = fmt.Fprintf(w, "Week:     %s\n", cli.HumanDuration(o.WeekTotal))
	_, _ = fmt.Fprintf(w, "Tomorrow: %s\n", classNames(o.Tomorrow))
}

func classNames(classes []model.ClassEntry) string {
	if len(classes) == 0 {
		return "no classes"
	}

	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, fmt.Sprintf("%s %s", c.Start, c.Name))
	}

	return strings.Join(names, ", ")
}
