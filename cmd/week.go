package cmd

import (
	"fmt"
	"io"

	"github.com/inovacc/studyplan/internal/cli"
	"github.com/inovacc/studyplan/internal/timeutil"
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print the weekly timetable",
	Long: `Print the timetable as a grid with one column per weekday. Rows cover
the hours spanned by all classes; overlapping classes share their column.

Examples:
  studyplan week
  studyplan week --day mon,wed,fri
  studyplan week --slot 15 --width 16`,
	Aliases: []string{"timetable"},
	Args:    cobra.NoArgs,
	RunE:    runWeek,
}

type weekOptions struct {
	days  string
	slot  int
	width int
}

var weekOpts weekOptions

func init() {
	rootCmd.AddCommand(weekCmd)

	weekCmd.Flags().StringVar(&weekOpts.days, "day", "", "Comma separated weekdays to show (default all)")
	weekCmd.Flags().IntVar(&weekOpts.slot, "slot", 0, "Minutes per row (default from config)")
	weekCmd.Flags().IntVar(&weekOpts.width, "width", 12, "Column width in cells")
}

func runWeek(cmd *cobra.Command, _ []string) error {
	return printWeek(cmd.OutOrStdout(), weekOpts)
}

func printWeek(w io.Writer, opts weekOptions) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	days, err := parseDays(opts.days)
	if err != nil {
		return err
	}

	slot := opts.slot
	if slot <= 0 {
		slot = currentConfig().WeekSlotMinutes
	}

	width := opts.width
	if width > cli.MaxColumnWidth {
		return fmt.Errorf("--width must be at most %d", cli.MaxColumnWidth)
	}

	if width <= 0 {
		width = 12
	}

	classes := app.Classes()
	if len(classes) == 0 {
		_, _ = fmt.Fprintln(w, "No classes in the timetable.")
		_, _ = fmt.Fprintln(w, "\nAdd one with: studyplan class add <name> --day mon --start 09:00 --end 10:00")

		return nil
	}

	grid := cli.RenderWeek(classes, cli.NewTheme(app.Settings().Dark), cli.WeekOptions{
		Days:        days,
		SlotMinutes: slot,
		ColumnWidth: width,
		Today:       timeutil.WeekdayOf(app.Now()),
	})

	_, _ = fmt.Fprintln(w, grid)

	return nil
}
