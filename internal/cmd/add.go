package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/stockroom/internal/inventory"
	"github.com/matthieukhl/stockroom/internal/models"
)

var (
	addID       string
	addName     string
	addPrice    string
	addStock    string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Validate and add a product to a fresh inventory",
	Long: `Validate a product and add it to a freshly seeded inventory, then print
the updated inventory. Every field is checked the same way as in the
interactive menu:

- id:       positive integer not used by another product
- name:     1 to 20 characters, not blank, unique ignoring case
- price:    positive number
- stock:    integer >= 0
- category: one of the registered categories

The inventory is not persisted.`,
	Args: cobra.NoArgs,
	RunE: addProduct,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addID, "id", "", "Product ID")
	addCmd.Flags().StringVar(&addName, "name", "", "Shoe brand")
	addCmd.Flags().StringVar(&addPrice, "price", "", "Unit price")
	addCmd.Flags().StringVar(&addStock, "stock", "", "Units in stock")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category")
	for _, name := range []string{"id", "name", "price", "stock", "category"} {
		_ = addCmd.MarkFlagRequired(name)
	}
}

func addProduct(cmd *cobra.Command, args []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	candidate, err := env.inv.ParseCandidate(inventory.RawCandidate{
		models.FieldID:       addID,
		models.FieldName:     addName,
		models.FieldPrice:    addPrice,
		models.FieldStock:    addStock,
		models.FieldCategory: addCategory,
	})
	if err != nil {
		var verr *inventory.ValidationError
		if errors.As(err, &verr) && verr.Field == models.FieldCategory {
			fmt.Fprintln(out, env.format.CategoryList(env.inv.Categories()))
		}
		return err
	}

	res, err := env.inv.Insert(candidate)
	var dup *inventory.DuplicateBrandError
	if errors.As(err, &dup) {
		fmt.Fprintln(out, env.format.DuplicateBrand(dup.Name, env.inv))
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to add product: %w", err)
	}

	env.log.WithField("product_id", res.Product.ID).Debug("product_inserted")
	fmt.Fprintln(out, env.format.Inserted(res, env.inv.Products()))
	return nil
}
