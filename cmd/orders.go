package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/money"
	"github.com/polkashop/polka/internal/output"
	"github.com/polkashop/polka/internal/status"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your order history",
	Long: `Print your orders, newest first as the backend returns them.

With --items each order expands into a tree of its purchased positions.`,
	GroupID: "shop",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := newClient().Orders(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(orders)
		}
		if len(orders) == 0 {
			fmt.Println(newLocalizer().T("orders_empty"))
			return nil
		}

		withItems, _ := cmd.Flags().GetBool("items")
		tag := money.Tag(settings.Locale)
		for _, o := range orders {
			fmt.Println(orderLine(o, tag))
			if withItems && len(o.Items) > 0 {
				fmt.Println(output.RenderTree(output.TreeNode{Children: orderItemNodes(o, tag)}, output.TreeRenderOptions{}))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)

	ordersCmd.Flags().Bool("items", false, "Expand each order into its items")
	ordersCmd.Flags().Bool("json", false, "Output as JSON")
}

// orderLine mirrors the storefront's order row: number, date, item
// count, total, status label.
func orderLine(o api.Order, tag language.Tag) string {
	return fmt.Sprintf("%s  %s  %d  %s  %s",
		o.Number,
		o.Date.Format("02.01.2006"),
		len(o.Items),
		money.Format(o.TotalAmount, orderCurrency(o), tag),
		status.Label(orderStatus(o)),
	)
}

// orderItemNodes builds one tree row per purchased position, with the
// tracking number as a child when the shipment carries one.
func orderItemNodes(o api.Order, tag language.Tag) []output.TreeNode {
	nodes := make([]output.TreeNode, 0, len(o.Items))
	for _, item := range o.Items {
		label := item.Name
		if item.Size != "" {
			label += " (" + item.Size + ")"
		}
		label += "  " + money.Format(item.Price, orderCurrency(o), tag)
		node := output.TreeNode{Label: label}
		if item.Delivery.TrackingNumber != "" {
			node.Children = append(node.Children, output.TreeNode{Label: item.Delivery.TrackingNumber})
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func orderCurrency(o api.Order) string {
	if o.Currency != "" {
		return o.Currency
	}
	return "RUB"
}

// orderStatus degrades to a raw-label status for values the client does
// not know.
func orderStatus(o api.Order) status.Status {
	st, err := status.Parse(o.Status)
	if err != nil {
		return status.Status(o.Status)
	}
	return st
}
