package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage studyplan configuration",
	Long: `Commands for managing studyplan configuration.

Settings are read from the INI file, then from a .env file in the working
directory, then from STUDYPLAN_* environment variables, then from the
global flags.

Available Commands:
  show    Print the effective configuration
  init    Write a configuration file`,
	Annotations: map[string]string{annotationNoStore: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
