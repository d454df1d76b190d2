// Package output renders plain-text structures for the CLI commands.
package output

import (
	"strings"
)

// TreeNode is one rendered row with optional children.
type TreeNode struct {
	Label    string
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior.
type TreeRenderOptions struct {
	MaxDepth int // 0 = unlimited
}

// RenderTree renders the children of a single root as a connected tree.
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual
// lines, useful for embedding trees in other output.
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string
	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}
		lines = append(lines, prefix+connector+node.Label)

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}
		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}
	return lines
}
