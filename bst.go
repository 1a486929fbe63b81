package bst

import (
	"errors"
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
)

type (
	tree struct {
		size int
		root *bstNode
		// ordering relation, ties go left
		cmp func(a, b string) int
	}

	// a node owns its children; the key never changes after creation
	bstNode struct {
		key   string
		left  *bstNode
		right *bstNode
	}

	Callback func(n Node) bool

	iterator struct {
		tree     *tree
		nextNode *bstNode
		// right children still to be visited, innermost last
		pending []*bstNode
	}

	// Stats is the structural summary of a tree and of the two sub-trees
	// below its root.
	Stats struct {
		Strings      int
		Height       int
		Leaves       int
		LeftHeight   int
		LeftStrings  int
		RightHeight  int
		RightStrings int
	}
)

func newNode(key string) *bstNode {
	return &bstNode{key: key}
}
