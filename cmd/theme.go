package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light|toggle]",
	Short: "Show or change the color palette",
	Long: `Show the color palette used by the dashboard and the timetable, or
change it.

Examples:
  studyplan theme
  studyplan theme dark
  studyplan theme toggle`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}

	return "light"
}

func runTheme(cmd *cobra.Command, args []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	dark := app.Settings().Dark

	if len(args) == 0 {
		_, _ = fmt.Fprintf(w, "Theme: %s\n", themeName(dark))
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "dark":
		dark = true
	case "light":
		dark = false
	case "toggle":
		dark = !dark
	default:
		return fmt.Errorf("unknown theme %q (want dark, light or toggle)", args[0])
	}

	if err := app.SetDark(dark); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Theme set to %s\n", themeName(dark))

	return nil
}
