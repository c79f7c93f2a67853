// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdot

import (
	"fmt"
	"io"
	"os"

	"github.com/dalzilio/xengine/xdd"
)

// Fdot writes a Graphviz description of the DAG rooted at root to w.
// Leaves are drawn as boxes labeled with their value (BOT, TOP or the
// integer), inner nodes as circles labeled with their variable; the low
// edge is dashed, the high edge solid.
func Fdot(w io.Writer, root *xdd.Node) error {
	order, id := numbering(root)
	fmt.Fprintln(w, "digraph xdd {")
	for _, n := range order {
		nid := id[n]
		if n.IsLeaf() {
			fmt.Fprintf(w, "  n%d [shape=box,label=\"%s\"];\n", nid, n)
			continue
		}
		fmt.Fprintf(w, "  n%d [shape=circle,label=\"%d\"];\n", nid, n.Var())
		fmt.Fprintf(w, "  n%d -> n%d [style=dashed];\n", nid, id[n.Low()])
		fmt.Fprintf(w, "  n%d -> n%d [style=solid];\n", nid, id[n.High()])
	}
	fmt.Fprintln(w, "}")
	return nil
}

// Dot writes the Graphviz description produced by Fdot to standard
// output.
func Dot(root *xdd.Node) error {
	return Fdot(os.Stdout, root)
}
