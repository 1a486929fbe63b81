/*
Command bststat reads whitespace-delimited strings from a file, organizes them
in a binary search tree and writes statistics about the tree's shape.

Usage:

	bststat [-nodes] [-dot file] [-v] infile outfile

Flags:

	-nodes     print every tree node, depth first, to standard output
	-dot file  write the tree shape in Graphviz DOT format to file
	-v         trace at debug level

Exit status is 0 on success and 1 if the arguments are wrong or a file cannot
be opened, read or written.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/e11jah/bst"
)

var errUsage = errors.New("Error - Usage.")

type options struct {
	nodes   bool
	dotFile string
	verbose bool
	inFile  string
	outFile string
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		reportError(stderr, err)
		return 1
	}
	if opts.verbose {
		bst.T().SetTraceLevel(tracing.LevelDebug)
	} else {
		bst.T().SetTraceLevel(tracing.LevelError)
	}
	if err := execute(opts, stdout); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("bststat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.nodes, "nodes", false, "print every tree node, depth first, to standard output")
	fs.StringVar(&opts.dotFile, "dot", "", "write the tree shape in Graphviz DOT format to `file`")
	fs.BoolVar(&opts.verbose, "v", false, "trace at debug level")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: bststat [-nodes] [-dot file] [-v] infile outfile")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return nil, errUsage
	}
	opts.inFile, opts.outFile = fs.Arg(0), fs.Arg(1)
	return opts, nil
}

func execute(opts *options, stdout io.Writer) error {
	in, err := os.Open(opts.inFile)
	if err != nil {
		return errors.Wrapf(err, "Error - %s could not be opened", opts.inFile)
	}
	defer in.Close()
	out, err := os.Create(opts.outFile)
	if err != nil {
		return errors.Wrapf(err, "Error - %s could not be opened for writing", opts.outFile)
	}

	tree := bst.New()
	count, err := ingest(in, tree)
	if err != nil {
		out.Close()
		return errors.Wrapf(err, "Error - reading %s", opts.inFile)
	}
	bst.T().Infof("bststat: read %d strings from %s", count, opts.inFile)

	if opts.nodes {
		if err := printNodes(stdout, tree); err != nil {
			out.Close()
			return errors.Wrap(err, "Error - printing nodes")
		}
	}
	if err := writeReport(out, count, tree.Stats()); err != nil {
		out.Close()
		return errors.Wrapf(err, "Error - writing %s", opts.outFile)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "Error - writing %s", opts.outFile)
	}
	if opts.dotFile != "" {
		return writeDotFile(opts.dotFile, tree)
	}
	return nil
}

func writeDotFile(name string, tree bst.Tree) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "Error - %s could not be opened for writing", name)
	}
	if err := bst.WriteDot(tree, f); err != nil {
		f.Close()
		return errors.Wrapf(err, "Error - writing %s", name)
	}
	return errors.Wrapf(f.Close(), "Error - writing %s", name)
}

var errorColor = color.New(color.FgRed)

func reportError(w io.Writer, err error) {
	errorColor.Fprintln(w, err.Error())
}
