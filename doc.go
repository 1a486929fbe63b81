/*
Package bst organizes strings in an unbalanced binary search tree and reports
structural statistics about it.

Keys are ordered by lexicographic comparison unless a different ordering is
installed with NewWithCompare. A key which compares less than or equal to a
node's key goes to the node's left sub-tree, a greater key goes right. Equal
keys are accepted, never rejected. The tree is never rebalanced, so its shape
is a function of insertion order only: keys inserted in sorted order produce a
chain with height Size()-1.

	tree := bst.New()
	for _, k := range []string{"dog", "cat", "bird"} {
		tree.Insert(k)
	}
	stats := tree.Stats() // Strings=3 Height=2 Leaves=1 LeftStrings=2 …

Insertion, traversal and the metrics Height, LeafCount and NodeCount are
iterative, which keeps stack usage flat for degenerate trees. There is no
deletion, and a tree must not be used from more than one goroutine while it
is being built.
*/
package bst

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var fallbackTracer tracing.Trace

// T traces to the global core tracer. As long as no core tracer is
// configured, traces go to a package-local logger at error level.
func T() tracing.Trace {
	if gtrace.CoreTracer != nil {
		return gtrace.CoreTracer
	}
	if fallbackTracer == nil {
		fallbackTracer = gologadapter.New()
		fallbackTracer.SetTraceLevel(tracing.LevelError)
	}
	return fallbackTracer
}
