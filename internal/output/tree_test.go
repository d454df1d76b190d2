package output

import (
	"strings"
	"testing"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_SingleNode(t *testing.T) {
	nodes := []TreeNode{
		{Label: "1042  12.05.2026  990 ₽"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "└──") {
		t.Errorf("expected last-item connector, got: %s", lines[0])
	}
	if !strings.Contains(lines[0], "1042") {
		t.Errorf("expected label in output, got: %s", lines[0])
	}
}

func TestRenderTreeLines_MultipleNodes(t *testing.T) {
	nodes := []TreeNode{
		{Label: "First"},
		{Label: "Second"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "├──") {
		t.Errorf("expected non-last connector for first node, got: %s", lines[0])
	}
	if !strings.Contains(lines[1], "└──") {
		t.Errorf("expected last connector for second node, got: %s", lines[1])
	}
}

func TestRenderTreeLines_NestedChildren(t *testing.T) {
	nodes := []TreeNode{
		{
			Label: "Order 1042",
			Children: []TreeNode{
				{Label: "Silk Dress M"},
				{Label: "Canvas Sneakers 39"},
			},
		},
		{Label: "Order 1043"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	// Children of a non-last parent keep the vertical rail.
	if !strings.HasPrefix(lines[1], "│   ") {
		t.Errorf("expected continued rail before child, got: %q", lines[1])
	}
	if !strings.Contains(lines[1], "├── Silk Dress M") {
		t.Errorf("unexpected first child line: %s", lines[1])
	}
	if !strings.Contains(lines[2], "└── Canvas Sneakers 39") {
		t.Errorf("unexpected last child line: %s", lines[2])
	}
	if !strings.HasPrefix(lines[3], "└── Order 1043") {
		t.Errorf("unexpected trailing root line: %s", lines[3])
	}
}

func TestRenderTreeLines_LastParentChildIndent(t *testing.T) {
	nodes := []TreeNode{
		{
			Label:    "Order 1042",
			Children: []TreeNode{{Label: "Silk Dress M"}},
		},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// The last parent's children indent with spaces, no rail.
	if !strings.HasPrefix(lines[1], "    └──") {
		t.Errorf("expected plain indent under last parent, got: %q", lines[1])
	}
}

func TestRenderTree_MaxDepth(t *testing.T) {
	root := TreeNode{
		Label: "root",
		Children: []TreeNode{
			{
				Label:    "first",
				Children: []TreeNode{{Label: "too deep"}},
			},
		},
	}
	out := RenderTree(root, TreeRenderOptions{MaxDepth: 1})

	if !strings.Contains(out, "first") {
		t.Errorf("expected depth-0 node, got: %s", out)
	}
	if strings.Contains(out, "too deep") {
		t.Errorf("expected depth cutoff before grandchildren, got: %s", out)
	}
}
