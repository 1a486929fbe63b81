package main

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/e11jah/bst"
)

// Tokens have no length limit of their own; the scanner buffer grows as
// needed.
const maxTokenSize = math.MaxInt32

// ingest inserts every whitespace-delimited token of r into tree and returns
// the number of tokens read.
func ingest(r io.Reader, tree bst.Tree) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	count := 0
	for scanner.Scan() {
		tree.Insert(scanner.Text())
		count++
	}
	return count, scanner.Err()
}

func printNodes(w io.Writer, tree bst.Tree) error {
	var err error
	tree.ForEach(func(n bst.Node) bool {
		_, err = fmt.Fprintf(w, "NODE: %s\n", n.Key())
		return err == nil
	})
	return err
}

func writeReport(w io.Writer, count int, stats bst.Stats) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "No. strings = %d\n", count)
	fmt.Fprintf(bw, "Height of the tree = %d\n", stats.Height)
	fmt.Fprintf(bw, "No. Leaves in tree = %d\n", stats.Leaves)
	fmt.Fprintf(bw, "Height of the left sub-tree = %d\n", stats.LeftHeight)
	fmt.Fprintf(bw, "No. strings left sub-tree = %d\n", stats.LeftStrings)
	fmt.Fprintf(bw, "Height of the right sub-tree = %d\n", stats.RightHeight)
	fmt.Fprintf(bw, "No. strings right sub-tree = %d\n", stats.RightStrings)
	return bw.Flush()
}
