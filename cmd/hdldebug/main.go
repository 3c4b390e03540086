// Command hdldebug parses a single VHDL file and prints the children of the
// first node of a given kind, for poking at what the grammar actually
// produces.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hdlxref/hdlfacts/internal/cst"
	"github.com/hdlxref/hdlfacts/internal/extractor"
)

func main() {
	kind := flag.String("kind", "if_statement", "node type to locate and dump")
	dialect := flag.String("dialect", "vhdl", "dialect to parse with")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hdldebug [--kind node_type] [--dialect name] <file>")
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	reg, err := extractor.Lookup(*dialect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root, err := cst.Parse(context.Background(), source, reg.Language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing: %v\n", err)
		os.Exit(1)
	}

	target := findKind(root, *kind)
	if target == nil {
		fmt.Printf("No %s found\n", *kind)
		os.Exit(1)
	}

	fmt.Printf("%s has %d children:\n", *kind, target.ChildCount())
	for i := 0; i < target.ChildCount(); i++ {
		child := target.Child(i)
		fmt.Printf("  [%d] type=%s field=%q content=%q\n", i, child.Kind(), child.FieldName(), child.Text(source))
	}
}

func findKind(n cst.Node, kind string) cst.Node {
	if n == nil {
		return nil
	}
	if n.Kind() == kind {
		return n
	}
	for i := 0; i < n.ChildCount(); i++ {
		if found := findKind(n.Child(i), kind); found != nil {
			return found
		}
	}
	return nil
}
