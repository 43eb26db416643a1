package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inovacc/studyplan/internal/core"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON backup",
	Long: `Import a backup written by 'studyplan export'.

Each collection present in the backup replaces the current one; collections
missing from the file are left untouched. Encrypted backups are detected
and ask for the password. A backup that cannot be parsed changes nothing.

Reads from stdin when no file is given.

Examples:
  studyplan import backup.json
  studyplan import --yes < backup.json
  studyplan import backup.txt`,
	Aliases: []string{"restore"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runImport,
}

var importYes bool

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip confirmation")
}

func readImportInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		return data, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return data, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	app, err := currentApp()
	if err != nil {
		return err
	}

	data, err := readImportInput(args)
	if err != nil {
		return err
	}

	if core.IsSealed(data) {
		if len(args) == 0 || args[0] == "-" {
			return fmt.Errorf("encrypted backups must be imported from a file so the password can be read")
		}

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		data, err = core.Unseal(data, password)
		if err != nil {
			return err
		}
	}

	snapshot, err := core.ParseSnapshot(data)
	if err != nil {
		return err
	}

	if !importYes && len(args) == 1 && isInteractive() {
		if !promptConfirm(w, "Replace the current data with this backup? [y/N]: ") {
			_, _ = fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	res, err := app.Apply(snapshot)
	if err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}

	if len(res.Applied) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing to import.")
		return nil
	}

	_, _ = fmt.Fprintf(w, "Imported %s: %d class(es), %d to-do(s), %d study day(s)\n",
		strings.Join(res.Applied, ", "), res.Classes, res.Todos, res.StudyDays)

	return nil
}
