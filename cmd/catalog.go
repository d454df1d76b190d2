package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/output"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Short:   "List the marketplace reference catalogs",
	Long:    `List the brand, style, and category catalogs the marketplace offers.`,
	GroupID: "shop",
}

var catalogBrandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List all brands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		brands, err := newClient().Brands(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(brands)
		}
		for _, b := range brands {
			fmt.Println(brandLine(b))
		}
		return nil
	},
}

var catalogStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List all style tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		styles, err := newClient().Styles(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(styles)
		}
		for _, s := range styles {
			fmt.Println(styleLine(s))
		}
		return nil
	},
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all product categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := newClient().Categories(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(categories)
		}
		for _, c := range categories {
			fmt.Println(categoryLine(c))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogBrandsCmd)
	catalogCmd.AddCommand(catalogStylesCmd)
	catalogCmd.AddCommand(catalogCategoriesCmd)

	for _, c := range []*cobra.Command{catalogBrandsCmd, catalogStylesCmd, catalogCategoriesCmd} {
		c.Flags().Bool("json", false, "Output as JSON")
	}
}

func brandLine(b api.Brand) string {
	line := fmt.Sprintf("%-4d %s", b.ID, b.Name)
	if b.Description != "" {
		line += "  " + b.Description
	}
	return line
}

func styleLine(s api.Style) string {
	line := fmt.Sprintf("%-14s %s", s.ID, s.Name)
	if s.Description != "" {
		line += "  " + s.Description
	}
	return line
}

func categoryLine(c api.Category) string {
	line := fmt.Sprintf("%-14s %s", c.ID, c.Name)
	if c.Description != "" {
		line += "  " + c.Description
	}
	return line
}
