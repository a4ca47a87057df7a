package metrics

import (
	"testing"

	"quadcraft/internal/meshing"
	"quadcraft/internal/world"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMeshMetricsFromMesher(t *testing.T) {
	reg := prometheus.NewRegistry()
	mm := NewMeshMetrics(reg)

	c := world.NewChunk(0, 0, 0)
	c.SetBlock(0, 0, 0, world.BlockTypeStone)

	m := meshing.NewMesher(48, meshing.WithRecorder(mm))
	if _, err := m.Mesh(c); err != nil {
		t.Fatalf("Mesh: %v", err)
	}

	if got := testutil.ToFloat64(mm.rebuilds); got != 1 {
		t.Errorf("rebuilds = %v, want 1", got)
	}
	if got := testutil.ToFloat64(mm.vertices); got != 24 {
		t.Errorf("vertices = %v, want 24", got)
	}
	if got := testutil.ToFloat64(mm.usage); got != 0.5 {
		t.Errorf("usage = %v, want 0.5", got)
	}

	c.SetBlock(2, 0, 0, world.BlockTypeStone)
	c.SetBlock(4, 0, 0, world.BlockTypeStone)
	if _, err := m.Mesh(c); err == nil {
		t.Fatalf("expected overflow")
	}
	if got := testutil.ToFloat64(mm.failures); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(mm.rebuilds); got != 1 {
		t.Errorf("rebuilds after failure = %v, want 1", got)
	}

	if n := testutil.CollectAndCount(mm.duration); n != 1 {
		t.Errorf("duration collectors = %d, want 1", n)
	}
}

func TestRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMeshMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Fatalf("second registration should panic")
		}
	}()
	NewMeshMetrics(reg)
}
