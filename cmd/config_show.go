package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the file, .env, environment and flag
overrides have been applied, in INI format.

Examples:
  studyplan config show
  STUDYPLAN_BACKEND=sqlite studyplan config show`,
	Annotations: map[string]string{annotationNoStore: "true"},
	Args:        cobra.NoArgs,
	RunE:        runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()
	w := cmd.OutOrStdout()

	if cfg.Path != "" {
		_, _ = fmt.Fprintf(w, "; read from %s\n", cfg.Path)
	}

	_, err := cfg.WriteTo(w)

	return err
}
