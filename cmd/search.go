package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/money"
	"github.com/polkashop/polka/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the product catalog",
	Long: `Search products by name, brand, or description.

Examples:
  polka search "шелковое платье"
  polka search кроссовки --category shoes --limit 5`,
	GroupID: "shop",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		limit, _ := cmd.Flags().GetInt("limit")

		products, err := newClient().SearchProducts(cmd.Context(), api.SearchParams{
			Query:    args[0],
			Category: category,
			Limit:    limit,
		})
		if err != nil {
			return err
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(products)
		}
		if len(products) == 0 {
			fmt.Println(newLocalizer().T("search_empty"))
			return nil
		}

		tag := money.Tag(settings.Locale)
		for _, p := range products {
			fmt.Println(productLine(p, tag))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("category", "", "Filter by category ID (see 'polka catalog categories')")
	searchCmd.Flags().Int("limit", 20, "Maximum number of results")
	searchCmd.Flags().Bool("json", false, "Output as JSON")
}

// productLine is one search hit: name with the liked marker, brand,
// price.
func productLine(p api.Product, tag language.Tag) string {
	name := p.Name
	if p.IsLiked {
		name += " ♥"
	}
	return fmt.Sprintf("%-40s %-20s %s", name, p.BrandName, money.Format(p.Price, "RUB", tag))
}
