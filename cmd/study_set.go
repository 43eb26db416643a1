package cmd

import (
	"github.com/spf13/cobra"
)

var studySetCmd = &cobra.Command{
	Use:   "set <minutes>",
	Short: "Overwrite the minutes studied on a day",
	Long: `Overwrite the minutes studied on a day. The value is rounded to whole
minutes and clamped to 0..1440.

Examples:
  studyplan study set 90
  studyplan study set 1h15m --date yesterday
  studyplan study set 0 --date 2024-03-04`,
	Args: cobra.ExactArgs(1),
	RunE: runStudySet,
}

var studyAddCmd = &cobra.Command{
	Use:   "add <minutes>",
	Short: "Add minutes to a day",
	Long: `Add minutes to those already logged on a day. Negative values subtract;
the total stays within 0..1440.

Examples:
  studyplan study add 25
  studyplan study add -- -15`,
	Args: cobra.ExactArgs(1),
	RunE: runStudyAdd,
}

var (
	studySetDate string
	studyAddDate string
)

func init() {
	studyCmd.AddCommand(studySetCmd)
	studyCmd.AddCommand(studyAddCmd)

	studySetCmd.Flags().StringVar(&studySetDate, "date", "", "Day to change: YYYY-MM-DD, today or yesterday (default today)")
	studyAddCmd.Flags().StringVar(&studyAddDate, "date", "", "Day to change: YYYY-MM-DD, today or yesterday (default today)")
}

func runStudySet(cmd *cobra.Command, args []string) error {
	return updateStudy(cmd, args[0], studySetDate, false)
}

func runStudyAdd(cmd *cobra.Command, args []string) error {
	return updateStudy(cmd, args[0], studyAddDate, true)
}

func updateStudy(cmd *cobra.Command, value, date string, relative bool) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	minutes, err := parseMinutes(value)
	if err != nil {
		return err
	}

	day, err := parseDate(date, app.Now())
	if err != nil {
		return err
	}

	if relative {
		minutes += float64(app.StudyMinutes(day))
	}

	stored, err := app.SetStudyMinutes(day, minutes)
	if err != nil {
		return err
	}

	printStudyDay(cmd, day, stored, app.Settings().Goal)

	return nil
}
