package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "stockroom",
	Short: "Stockroom - shoe shop inventory manager",
	Long: `Stockroom keeps an in-memory shoe inventory: browse products by
category, register new products with validated fields and review
inventory statistics.

Use 'stockroom run' for the interactive menu, or the one-shot commands
to query a freshly seeded inventory. Nothing is persisted between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: search ./deploy, ./, $HOME/.stockroom, /etc/stockroom)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Diagnostics log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Diagnostics log format (text|json)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
