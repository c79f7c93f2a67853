// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package localtime_test

import (
	"strings"
	"testing"

	"github.com/dalzilio/xengine/cfg"
	"github.com/dalzilio/xengine/localtime"
	"github.com/dalzilio/xengine/resource"
	"github.com/dalzilio/xengine/xdd"
	"github.com/dalzilio/xengine/xsteps"
)

func TestStatsRecordsOnlyWhileRunning(t *testing.T) {
	mgr := xdd.NewManager()
	rman := resource.NewPipelineModel(1)
	stats := localtime.NewStats()
	p, err := localtime.NewProcessor(mgr, rman, rman, localtime.WithStats(stats))
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}

	if err := p.ProcessEdge(cfg.NewEdge("e", xsteps.UseStep(0, 1))); err != nil {
		t.Fatalf("ProcessEdge: %v", err)
	}
	if !strings.Contains(stats.String(), "entries: 0") {
		t.Errorf("stats before Start: expected no entries recorded, got %q", stats.String())
	}

	stats.Start()
	if err := p.ProcessEdge(cfg.NewEdge("e", xsteps.UseStep(0, 1))); err != nil {
		t.Fatalf("ProcessEdge: %v", err)
	}
	if strings.Contains(stats.String(), "entries: 0") {
		t.Errorf("stats after Start: expected entries to be recorded, got %q", stats.String())
	}

	stats.Stop()
	after := stats.String()
	if err := p.ProcessEdge(cfg.NewEdge("e", xsteps.UseStep(0, 1))); err != nil {
		t.Fatalf("ProcessEdge: %v", err)
	}
	if stats.String() != after {
		t.Errorf("stats after Stop: expected no further change, got %q then %q", after, stats.String())
	}
}
