package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hdlxref/hdlfacts/internal/config"
)

func newTestPipeline(workers int, extract func(ctx context.Context, path string) error) *Pipeline {
	return &Pipeline{
		Config:      &config.Config{Concurrency: config.ConcurrencyConfig{Workers: workers}},
		extractFile: extract,
	}
}

func TestRunExtractsEveryFile(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}

	p := newTestPipeline(2, func(_ context.Context, path string) error {
		mu.Lock()
		defer mu.Unlock()
		seen[path] = true
		return nil
	})

	files := []string{"a.vhd", "b.vhd", "c.vhd"}
	if err := p.Run(context.Background(), files); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, f := range files {
		if !seen[f] {
			t.Errorf("expected %s to be extracted", f)
		}
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	var active, maxActive int32
	p := newTestPipeline(3, func(_ context.Context, _ string) error {
		n := atomic.AddInt32(&active, 1)
		defer atomic.AddInt32(&active, -1)
		for {
			cur := atomic.LoadInt32(&maxActive)
			if n <= cur || atomic.CompareAndSwapInt32(&maxActive, cur, n) {
				break
			}
		}
		return nil
	})

	files := make([]string, 20)
	for i := range files {
		files[i] = strconv.Itoa(i) + ".vhd"
	}
	if err := p.Run(context.Background(), files); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if maxActive > 3 {
		t.Errorf("maxActive = %d, want <= 3", maxActive)
	}
}

func TestRunAggregatesErrors(t *testing.T) {
	p := newTestPipeline(4, func(_ context.Context, path string) error {
		if path == "bad.vhd" {
			return fmt.Errorf("boom")
		}
		return nil
	})

	err := p.Run(context.Background(), []string{"ok.vhd", "bad.vhd"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestRunWithZeroFiles(t *testing.T) {
	p := newTestPipeline(0, func(_ context.Context, _ string) error {
		t.Error("extractFile should not be called")
		return nil
	})
	if err := p.Run(context.Background(), nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
