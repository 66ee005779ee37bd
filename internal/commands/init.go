package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/roro-dev/roro/internal/config"
)

func newInitCommand(a *app) *cobra.Command {
	var currency string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default roro.yaml",
		Args:  cobra.NoArgs,
		// The ledger is not needed to write configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runInit(a.configPath, a.dataDir, currency, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.configPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "display currency code, e.g. USD")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runInit(path, dataDir, currency string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking config: %w", err)
		}
	}

	cfg := config.Default()
	cfg.Storage.Dir = dataDir
	cfg.Display.Currency = currency
	return config.Save(path, cfg)
}
