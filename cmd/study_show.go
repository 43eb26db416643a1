package cmd

import (
	"fmt"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/studylog"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/spf13/cobra"
)

var studyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's study and this week",
	Long: `Show the minutes studied today against the goal, and the minutes of each
day of the current week with the longest day marked.

Examples:
  studyplan study show
  studyplan study show --json`,
	Args: cobra.NoArgs,
	RunE: runStudyShow,
}

var studyShowJSON bool

func init() {
	studyCmd.AddCommand(studyShowCmd)

	studyShowCmd.Flags().BoolVar(&studyShowJSON, "json", false, "Output as JSON")
}

// StudyShowResult is the JSON output of study show
type StudyShowResult struct {
	Date    string                    `json:"date"`
	Minutes int                       `json:"minutes"`
	Goal    int                       `json:"goal"`
	GoalPct int                       `json:"goal_pct"`
	Week    [timeutil.DaysPerWeek]int `json:"week"`
	Total   int                       `json:"week_total"`
	Longest string                    `json:"longest_day"`
}

func runStudyShow(cmd *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	now := app.Now()
	log := app.StudyLog()
	goal := app.Settings().Goal
	week := log.Weekly(now)
	longest := studylog.LongestDay(week)

	today := app.StudyMinutes(now)

	total := 0
	for _, m := range week {
		total += m
	}

	if studyShowJSON {
		return printJSON(cmd.OutOrStdout(), StudyShowResult{
			Date:    timeutil.DateKey(now),
			Minutes: today,
			Goal:    goal,
			GoalPct: studylog.GoalProgress(today, goal),
			Week:    week,
			Total:   total,
			Longest: timeutil.Weekday(longest).String(),
		})
	}

	printStudyDay(cmd, now, today, goal)

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(w)

	for i, m := range week {
		marker := ""
		if i == longest && m > 0 {
			marker = "  <- longest"
		}

		_, _ = fmt.Fprintf(w, "  %s  %7s%s\n", timeutil.Weekday(i).Short(), cli.HumanDuration(m), marker)
	}

	_, _ = fmt.Fprintf(w, "\n  Week total: %s\n", cli.HumanDuration(total))

	return nil
}
