package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/inovacc/studyplan/internal/config"
	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file",
	Long: `Write the effective configuration to the file given by --config, or to
the default location, so it can be edited.

An existing file is only replaced with --force.

Examples:
  studyplan config init
  studyplan config init --backend sqlite
  studyplan --config ./studyplan.ini config init --force`,
	Annotations: map[string]string{annotationNoStore: "true"},
	Args:        cobra.NoArgs,
	RunE:        runConfigInit,
}

var configInitForce bool

func init() {
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := flagConfig
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}

		path = p
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := currentConfig().Save(path); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

	return nil
}
