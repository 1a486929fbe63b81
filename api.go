package bst

import "strings"

type Tree interface {
	Insert(key string)
	Root() Node
	Size() int
	Traverse() Iterator
	ForEach(callback Callback)
	Stats() Stats
}

type Iterator interface {
	HasNext() bool
	Next() (Node, error)
}

// Node is a read-only view of a tree node. Left and Right return nil
// when the child is absent.
type Node interface {
	Key() string
	Left() Node
	Right() Node
	IsLeaf() bool
}

// New creates an empty tree ordered by lexicographic string comparison.
func New() Tree {
	return &tree{cmp: strings.Compare}
}

// NewWithCompare creates an empty tree ordered by cmp, which must return a
// negative, zero or positive value like strings.Compare. Keys comparing
// equal to a node's key are placed in its left sub-tree.
func NewWithCompare(cmp func(a, b string) int) Tree {
	if cmp == nil {
		cmp = strings.Compare
	}
	return &tree{cmp: cmp}
}
