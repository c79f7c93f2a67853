// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xdot

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dalzilio/xengine/xdd"
)

// numbering assigns a stable small integer id to every node reachable
// from root, in topological order (leaves and low-subtrees before the
// nodes that reference them).
func numbering(root *xdd.Node) (order []*xdd.Node, id map[*xdd.Node]int) {
	order = root.TopologicalOrder()
	id = make(map[*xdd.Node]int, len(order))
	for i, n := range order {
		id[n] = i
	}
	return order, id
}

// Fprint writes a tab-aligned table describing every node reachable from
// root to w: one line per node, giving its id, and either its leaf value
// or its variable and the ids of its low/high children.
func Fprint(w io.Writer, root *xdd.Node) error {
	order, id := numbering(root)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range order {
		if n.IsLeaf() {
			fmt.Fprintf(tw, "%d\t%s\n", id[n], n)
			continue
		}
		fmt.Fprintf(tw, "%d\t[%d]\t?\t%d\t:\t%d\n", id[n], n.Var(), id[n.High()], id[n.Low()])
	}
	return tw.Flush()
}

// Print writes the table produced by Fprint to standard output.
func Print(root *xdd.Node) error {
	return Fprint(os.Stdout, root)
}
