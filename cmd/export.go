package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/studyplan/internal/core"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as a JSON backup",
	Long: `Export the timetable, the to-do list, the study log, the goal and the
theme as one JSON document.

With --encrypt the document is encrypted with a password using AES-256-GCM
and written as base58 text that starts with "STUDYPLAN:", for easy
copy/paste.

Examples:
  studyplan export > backup.json
  studyplan export -o backup.json
  studyplan export --encrypt -o backup.txt`,
	Aliases: []string{"backup"},
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

var (
	exportOutput  string
	exportEncrypt bool
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().BoolVar(&exportEncrypt, "encrypt", false, "Encrypt the backup with a password")
}

func runExport(cmd *cobra.Command, _ []string) error {
	app, err := currentApp()
	if err != nil {
		return err
	}

	data, err := app.Export()
	if err != nil {
		return fmt.Errorf("failed to export data: %w", err)
	}

	if exportEncrypt {
		password, err := readNewPassword(core.MinPasswordLength)
		if err != nil {
			return err
		}

		armored, err := core.Seal(data, password)
		if err != nil {
			return fmt.Errorf("failed to encrypt backup: %w", err)
		}

		data = []byte(armored + "\n")
	}

	if exportOutput == "" || exportOutput == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(exportOutput, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Backup written to %s\n", exportOutput)

	return nil
}
