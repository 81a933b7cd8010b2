package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matthieukhl/stockroom/internal/console"
	"github.com/matthieukhl/stockroom/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive inventory menu",
	Long: `Start the interactive menu:
1. Search products by category
2. Add a new product to the inventory
3. Show inventory statistics
4. Exit

An empty answer at the menu, or end of input, also exits.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	term := console.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	ctrl := session.NewController(env.inv, term, env.format, env.log)
	ctrl.Start()

	return nil
}
