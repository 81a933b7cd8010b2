package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List registered categories and the brand map",
	Args:  cobra.NoArgs,
	RunE:  listCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func listCategories(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), env.format.Categories(env.inv.Categories(), env.inv.Brands()))
	return nil
}
