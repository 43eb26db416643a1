package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/inovacc/studyplan/internal/application"
	"github.com/inovacc/studyplan/internal/config"
	"github.com/inovacc/studyplan/internal/core"
	"github.com/inovacc/studyplan/internal/logger"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// annotationNoStore marks commands that run without opening the store.
const annotationNoStore = "studyplan/no-store"

// session is the state opened for a single command invocation.
type session struct {
	cfg *config.Config
	kv  store.KV
	app *core.App
	log zerolog.Logger
}

var (
	sess *session

	// clock and newLogger are swapped in tests
	clock     = time.Now
	newLogger = logger.Setup

	flagConfig   string
	flagDataDir  string
	flagBackend  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A terminal study planner",
	Long: `Studyplan keeps a weekly class timetable, a to-do list and a log of
daily study minutes, and shows what is happening now, what comes next and
how today's study compares with your goal.

Run 'studyplan' without arguments on a terminal to open the interactive menu.`,
	Version:            application.AppVersion,
	SilenceUsage:       true,
	PersistentPreRunE:  openSession,
	PersistentPostRunE: closeSessionHook,
	RunE:               runMenu,
}

// Execute runs the command tree with the process arguments.
func Execute() {
	if err := ExecuteArgs(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// ExecuteArgs runs the command tree with args and releases the store
// afterwards, including when the command failed.
func ExecuteArgs(args []string) error {
	rootCmd.SetArgs(args)

	defer closeSession()

	return rootCmd.Execute()
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default is <config dir>/studyplan/studyplan.ini)")
	pf.StringVar(&flagDataDir, "data-dir", "", "Directory holding the data store")
	pf.StringVar(&flagBackend, "backend", "", "Storage backend: bolt, sqlite or memory")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}

	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func openSession(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel, cfg.LogFormat)
	sess = &session{cfg: cfg, log: log}

	if cmd.Annotations[annotationNoStore] == "true" {
		return nil
	}

	backend := cfg.StoreBackend()
	if backend != store.BackendMemory {
		if err := application.EnsureDirectory(cfg.DataDir); err != nil {
			return err
		}
	}

	kv, err := store.Open(backend, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", backend, err)
	}

	if err := kv.Ping(); err != nil {
		_ = kv.Close()
		return fmt.Errorf("%s store is not reachable: %w", backend, err)
	}

	app, err := core.Load(kv, core.Options{Logger: log, Clock: clock})
	if err != nil {
		_ = kv.Close()
		return err
	}

	sess.kv = kv
	sess.app = app

	if e := log.Debug(); e.Enabled() {
		keys, err := kv.Keys()
		if err != nil {
			log.Warn().Err(err).Msg("failed to list stored keys")
		}

		e.Str("backend", string(backend)).
			Str("data_dir", cfg.DataDir).
			Str("command", cmd.CommandPath()).
			Strs("keys", keys).
			Msg("session opened")
	}

	return nil
}

func closeSessionHook(_ *cobra.Command, _ []string) error {
	return closeSession()
}

func closeSession() error {
	if sess == nil {
		return nil
	}

	var err error
	if sess.kv != nil {
		err = sess.kv.Close()
	}

	sess = nil

	return err
}

// currentApp returns the application state opened for this invocation.
func currentApp() (*core.App, error) {
	if sess == nil || sess.app == nil {
		return nil, errors.New("store is not open")
	}

	return sess.app, nil
}

// currentConfig returns the configuration loaded for this invocation,
// falling back to defaults.
func currentConfig() *config.Config {
	if sess == nil || sess.cfg == nil {
		return config.Default("")
	}

	return sess.cfg
}
