// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dalzilio/xengine/cfg"
	"github.com/dalzilio/xengine/localtime"
	"github.com/dalzilio/xengine/resource"
	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xdot"
	"github.com/dalzilio/xengine/xsteps"
)

var (
	workers = flag.Int("workers", 0, "number of worker goroutines (0 = sequential, -1 = GOMAXPROCS)")
	split   = flag.Int("split", localtime.DefaultSplitThreshold, "split-threshold hint passed to the step front-end")
	stats   = flag.Bool("stats", false, "collect and print matrix statistics")
	dotPath = flag.String("dot", "", "write a Graphviz .dot dump of the first edge's time diagram to this path ('-' for stdout)")
)

func main() {
	log.SetPrefix("xengine: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags]\n\nRuns the local-edge timing engine over a small built-in demonstration CFG.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	w := *workers
	if w < 0 {
		w = localtime.DefaultWorkers()
	}

	mgr := xdd.NewManager()
	rman := resource.NewPipelineModel(2)

	var collector *localtime.Stats
	opts := []localtime.Option{localtime.WithSplitThreshold(*split)}
	if *stats {
		collector = localtime.NewStats()
		collector.Start()
		opts = append(opts, localtime.WithStats(collector))
	}

	proc, err := localtime.NewProcessor(mgr, rman, rman, opts...)
	if err != nil {
		log.Fatalf("configuring processor: %s", err)
	}

	graph, edges := demoGraph()
	if err := proc.Run(graph, w); err != nil {
		log.Fatalf("analysis failed: %s", err)
	}

	for _, e := range edges {
		fmt.Printf("%s:", e.Label)
		for _, t := range e.Times() {
			fmt.Printf(" %s", t.Root())
		}
		fmt.Println()
	}

	if collector != nil {
		collector.Stop()
		fmt.Println(collector)
	}

	if *dotPath != "" && len(edges) > 0 && len(edges[0].Times()) > 0 {
		if err := writeDot(*dotPath, edges[0].Times()[0].Root()); err != nil {
			log.Fatalf("writing dot output: %s", err)
		}
	}
}

// demoGraph builds a small, fixed CFG exercising a branch and a split, in
// lieu of a real step front-end (explicitly an external collaborator of
// this engine).
func demoGraph() (*cfg.Collection, []*cfg.Edge) {
	e0 := cfg.NewEdge("entry->loop", xsteps.UseStep(0, 4))
	e1 := cfg.NewEdge("loop->body", xsteps.BranchStep(1, 1, 3), xsteps.SplitStep(), xsteps.UseStep(1, 6))
	e2 := cfg.NewEdge("body->exit", xsteps.ReleaseStep(0))

	entry := cfg.NewBlock("entry", false)
	loop := cfg.NewBlock("loop", true, e0)
	body := cfg.NewBlock("body", true, e1)
	exit := cfg.NewBlock("exit", false, e2)

	return cfg.NewCollection(entry, loop, body, exit), []*cfg.Edge{e0, e1, e2}
}

func writeDot(path string, root *xdd.Node) error {
	if path == "-" {
		return xdot.Fdot(os.Stdout, root)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return xdot.Fdot(f, root)
}
