package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Log and review study minutes",
	Long: `Log the minutes studied per day and review them against the daily goal.

Without a subcommand today's study is shown.

Available Commands:
  set      Overwrite the minutes of a day
  add      Add minutes to a day
  show     Show today and this week
  history  Show the last days`,
	Args: cobra.NoArgs,
	RunE: runStudyShow,
}

func init() {
	rootCmd.AddCommand(studyCmd)
}

// parseMinutes accepts a number of minutes ("45", "37.5") or a duration
// ("1h30m").
func parseMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q (want a number or a duration like 1h30m)", s)
	}

	return d.Minutes(), nil
}

func printStudyDay(cmd *cobra.Command, day time.Time, minutes, goal int) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s of %s (%d%%)\n",
		timeutil.WeekdayOf(day).Short(), timeutil.DateKey(day),
		cli.HumanDuration(minutes), cli.HumanDuration(goal),
		studylog.GoalProgress(minutes, goal))
}
