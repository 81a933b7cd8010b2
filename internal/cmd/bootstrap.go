package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/matthieukhl/stockroom/internal/config"
	"github.com/matthieukhl/stockroom/internal/inventory"
	"github.com/matthieukhl/stockroom/internal/logging"
	"github.com/matthieukhl/stockroom/internal/report"
)

// environment is everything a command needs to work on the inventory.
type environment struct {
	cfg    *config.Config
	log    *logrus.Logger
	inv    *inventory.Inventory
	format *report.Formatter
}

func bootstrap(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	format, err := report.NewFormatter(cfg.Display.Locale, cfg.Display.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to set up display: %w", err)
	}

	inv := inventory.New(cfg.Inventory.Categories)
	if cfg.Inventory.Seed {
		loaded := inv.Seed()
		logger.WithField("products", loaded).Debug("inventory_seeded")
	}

	return &environment{cfg: cfg, log: logger, inv: inv, format: format}, nil
}
