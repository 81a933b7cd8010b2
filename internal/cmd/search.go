package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/stockroom/internal/inventory"
)

var searchCmd = &cobra.Command{
	Use:   "search <category>",
	Short: "List the products of a category",
	Long: `List the seeded products of a category, followed by every brand the
brand map assigns to it. The category must be registered.`,
	Args: cobra.ExactArgs(1),
	RunE: searchCategory,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func searchCategory(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	category := args[0]

	match, err := env.inv.FindByCategory(category)
	if errors.Is(err, inventory.ErrInvalidCategory) {
		fmt.Fprintln(out, env.format.InvalidCategory(category, env.inv.Categories()))
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to search category: %w", err)
	}

	fmt.Fprintln(out, env.format.SearchResult(match))
	return nil
}
