package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polkashop/polka/internal/output"
	"github.com/polkashop/polka/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the order status lifecycle",
	Long: `Displays the order status lifecycle state machine.

Shows every status the backend reports, its display label, and the
transitions the fulfillment flow allows. The client never initiates a
transition; this is the map for reading order history.`,
	GroupID: "system",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		showMermaid, _ := cmd.Flags().GetBool("mermaid")
		showDot, _ := cmd.Flags().GetBool("dot")

		if showMermaid {
			return printLifecycleMermaid()
		}
		if showDot {
			return printLifecycleDot()
		}
		return printLifecycle()
	},
}

func printLifecycle() error {
	fmt.Println("ORDER STATUS LIFECYCLE")
	fmt.Println("======================")
	fmt.Println()

	fmt.Println("STATUSES:")
	for _, s := range status.AllStatuses() {
		terminal := ""
		if status.IsTerminal(s) {
			terminal = " (terminal)"
		}
		fmt.Printf("  • %-19s %s%s\n", s, status.Label(s), terminal)
	}
	fmt.Println()

	fmt.Println("TRANSITIONS:")
	for _, from := range status.AllStatuses() {
		nodes := transitionNodes(from)
		if len(nodes) == 0 {
			continue
		}
		fmt.Printf("  %s\n", from)
		for _, line := range output.RenderTreeLines(nodes, output.TreeRenderOptions{}) {
			fmt.Println("  " + line)
		}
	}
	fmt.Println()

	return nil
}

// transitionNodes builds one tree row per status reachable from the
// given one.
func transitionNodes(from status.Status) []output.TreeNode {
	targets := status.TransitionsFrom(from)
	nodes := make([]output.TreeNode, 0, len(targets))
	for _, to := range targets {
		nodes = append(nodes, output.TreeNode{
			Label: fmt.Sprintf("%s (%s)", to, status.TransitionName(from, to)),
		})
	}
	return nodes
}

func printLifecycleMermaid() error {
	fmt.Println("```mermaid")
	fmt.Println("stateDiagram-v2")

	for _, t := range status.AllTransitions() {
		fmt.Printf("    %s --> %s: %s\n", t.From, t.To, status.TransitionName(t.From, t.To))
	}

	fmt.Println("```")
	return nil
}

func printLifecycleDot() error {
	fmt.Println("digraph lifecycle {")
	fmt.Println("    rankdir=LR;")
	fmt.Println("    node [shape=box];")
	fmt.Println()

	for _, s := range status.AllStatuses() {
		if status.IsTerminal(s) {
			fmt.Printf("    %s [style=filled,fillcolor=lightgray];\n", s)
		}
	}
	fmt.Println()

	for _, t := range status.AllTransitions() {
		fmt.Printf("    %s -> %s [label=\"%s\"];\n", t.From, t.To, status.TransitionName(t.From, t.To))
	}

	fmt.Println("}")
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().Bool("mermaid", false, "Output Mermaid diagram")
	statusCmd.Flags().Bool("dot", false, "Output GraphViz DOT diagram")
}
