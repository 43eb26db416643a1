package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/spf13/cobra"
)

var studyHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the study minutes of the last days",
	Long: `Show the minutes studied on each of the last days, newest first, with
the total, average and best day of the window.

On a terminal the history opens as a scrollable table unless --plain or
--json is given.

Examples:
  studyplan study history
  studyplan study history --days 30 --plain
  studyplan study history --json`,
	Aliases: []string{"log"},
	Args:    cobra.NoArgs,
	RunE:    runStudyHistory,
}

var (
	studyHistoryDays  int
	studyHistoryJSON  bool
	studyHistoryPlain bool
)

func init() {
	studyCmd.AddCommand(studyHistoryCmd)

	studyHistoryCmd.Flags().IntVarP(&studyHistoryDays, "days", "n", 0, "Number of days (default from config)")
	studyHistoryCmd.Flags().BoolVar(&studyHistoryJSON, "json", false, "Output as JSON")
	studyHistoryCmd.Flags().BoolVar(&studyHistoryPlain, "plain", false, "Print instead of opening the table")
}

// StudyHistoryResult is the JSON output of study history
type StudyHistoryResult struct {
	Days    []studylog.Day   `json:"days"`
	Summary studylog.Summary `json:"summary"`
}

func runStudyHistory(cmd *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	days := studyHistoryDays
	if days > studylog.MaxHistoryDays {
		return fmt.Errorf("--days must be at most %d", studylog.MaxHistoryDays)
	}

	if days <= 0 {
		days = currentConfig().HistoryDays
	}

	if !studyHistoryJSON && !studyHistoryPlain && isInteractive() {
		return runHistoryTable(days)
	}

	window := app.StudyLog().History(days, app.Now())
	summary := studylog.Summarize(window)

	if studyHistoryJSON {
		return printJSON(cmd.OutOrStdout(), StudyHistoryResult{Days: window, Summary: summary})
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(w, "DATE\tDAY\tMINUTES\tTIME\t")
	_, _ = fmt.Fprintln(w, "----\t---\t-------\t----\t")

	for _, row := range cli.HistoryRows(window) {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "\nTotal %s, average %s/day, best %s, %d active day(s)\n",
		cli.HumanDuration(summary.Total),
		cli.HumanDuration(int(summary.Average+0.5)),
		cli.HumanDuration(summary.Max),
		summary.ActiveDays)

	return nil
}

// runHistoryTable opens the interactive history table.
func runHistoryTable(days int) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	m := cli.NewHistoryModel(app.StudyLog(), days, app.Now(), cli.NewTheme(app.Settings().Dark))

	_, err = runProgram(m)

	return err
}
