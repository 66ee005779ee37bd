package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/roro-dev/roro/internal/buildinfo"
	"github.com/roro-dev/roro/internal/config"
	"github.com/roro-dev/roro/internal/ledger"
	rlog "github.com/roro-dev/roro/internal/log"
	"github.com/roro-dev/roro/internal/model"
	"github.com/roro-dev/roro/internal/store"
)

// app carries state shared by every subcommand once the ledger is open.
type app struct {
	configPath string
	dataDir    string

	cfg    *config.Config
	log    *slog.Logger
	ledger *ledger.Ledger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "roro",
		Short:   "Personal income and expense ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding the ledger file (overrides "+config.EnvDataDir+")")

	rootCmd.AddCommand(
		newInitCommand(a),
		newAddCommand(a),
		newDeleteCommand(a),
		newClearCommand(a),
		newListCommand(a),
		newSearchCommand(a),
		newSummaryCommand(a),
		newStatsCommand(a),
		newWeekCommand(a),
		newBudgetCommand(a),
		newCategoriesCommand(a),
		newExportCommand(a),
		newImportCommand(a),
	)

	return rootCmd
}

// open loads configuration and the ledger. A .env file in the working
// directory is optional.
func (a *app) open(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.Getenv)
	if a.dataDir != "" {
		cfg.Storage.Dir = a.dataDir
	}

	level, err := rlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	logCfg := rlog.DefaultConfig()
	logCfg.Level = level
	logCfg.Writer = cmd.ErrOrStderr()
	a.log = rlog.New(logCfg)

	path, err := store.ResolvePath(cfg.Storage.Dir, cfg.Storage.File)
	if err != nil {
		return err
	}
	a.log.Debug("opening ledger", rlog.FieldPath, path)

	a.cfg = cfg
	a.ledger = ledger.Open(store.New(path), a.log)
	return nil
}

// currency returns the display currency: config override, then the
// ledger's own setting.
func (a *app) currency() string {
	if a.cfg.Display.Currency != "" {
		return a.cfg.Display.Currency
	}
	if c := a.ledger.Settings().Currency; c != "" {
		return c
	}
	return model.DefaultCurrency
}
