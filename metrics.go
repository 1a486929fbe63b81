package bst

// The metrics below take the root of a (sub-)tree, which may be nil for an
// empty sub-tree. They walk the tree with an explicit stack or queue, so a
// degenerate, list-shaped tree does not deepen the goroutine stack.

// Height returns the number of edges on the longest path from n down to a
// leaf. Empty trees and single leaves have height 0.
func Height(n Node) int {
	root := asNode(n)
	if root == nil {
		return 0
	}
	levels := 0
	level := []*bstNode{root}
	for len(level) > 0 {
		levels++
		var below []*bstNode
		for _, node := range level {
			if node.left != nil {
				below = append(below, node.left)
			}
			if node.right != nil {
				below = append(below, node.right)
			}
		}
		level = below
	}
	return levels - 1
}

// LeafCount returns the number of nodes without children below and
// including n.
func LeafCount(n Node) int {
	leaves := 0
	walk(asNode(n), func(node *bstNode) {
		if node.IsLeaf() {
			leaves++
		}
	})
	return leaves
}

// NodeCount returns the number of nodes below and including n.
func NodeCount(n Node) int {
	count := 0
	walk(asNode(n), func(*bstNode) {
		count++
	})
	return count
}

func walk(root *bstNode, visit func(*bstNode)) {
	if root == nil {
		return
	}
	stack := []*bstNode{root}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(curr)
		if curr.right != nil {
			stack = append(stack, curr.right)
		}
		if curr.left != nil {
			stack = append(stack, curr.left)
		}
	}
}

func (t *tree) Stats() Stats {
	return Collect(t)
}

// Collect computes the statistics of t. The sub-tree figures treat the
// children of the root as trees of their own; for an empty tree all
// figures are 0.
func Collect(t Tree) Stats {
	root := t.Root()
	if root == nil {
		return Stats{}
	}
	left, right := root.Left(), root.Right()
	stats := Stats{
		Strings:      t.Size(),
		Height:       Height(root),
		Leaves:       LeafCount(root),
		LeftHeight:   Height(left),
		LeftStrings:  NodeCount(left),
		RightHeight:  Height(right),
		RightStrings: NodeCount(right),
	}
	T().Debugf("bst: stats %+v", stats)
	return stats
}
