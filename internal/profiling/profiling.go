package profiling

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timing. Buckets are named "<subsystem>.<operation>" and
// reset by the host loop at the start of every frame.

// Sample is the accumulated time of one bucket in the current frame.
type Sample struct {
	Name  string
	Total time.Duration
	Calls int
}

type bucket struct {
	total time.Duration
	calls int
}

var (
	mu      sync.Mutex
	buckets = make(map[string]bucket)
)

// Track starts timing name and returns the function that stops it.
//
//	defer profiling.Track("meshing.Mesh")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		add(name, time.Since(start))
	}
}

func add(name string, d time.Duration) {
	mu.Lock()
	b := buckets[name]
	b.total += d
	b.calls++
	buckets[name] = b
	mu.Unlock()
}

// ResetFrame drops all buckets.
func ResetFrame() {
	mu.Lock()
	clear(buckets)
	mu.Unlock()
}

// Snapshot returns the current totals by name.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(buckets))
	for k, b := range buckets {
		out[k] = b.total
	}
	return out
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, b := range buckets {
		if strings.HasPrefix(k, prefix) {
			total += b.total
		}
	}
	return total
}

// Top returns at most n samples, slowest first. Ties sort by name.
func Top(n int) []Sample {
	mu.Lock()
	samples := make([]Sample, 0, len(buckets))
	for k, b := range buckets {
		samples = append(samples, Sample{Name: k, Total: b.total, Calls: b.calls})
	}
	mu.Unlock()

	slices.SortFunc(samples, func(a, b Sample) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return samples[:min(n, len(samples))]
}

// TopN formats Top(n) for the log, e.g. "meshing.Mesh:4.2ms, glfw.SwapBuffers:2.1ms".
// Buckets hit more than once in the frame show the call count.
func TopN(n int) string {
	var sb strings.Builder
	for i, s := range Top(n) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.Name)
		sb.WriteByte(':')
		sb.WriteString(formatMs(s.Total))
		if s.Calls > 1 {
			fmt.Fprintf(&sb, "x%d", s.Calls)
		}
	}
	return sb.String()
}

func formatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	return strings.TrimSuffix(s, ".0") + "ms"
}
