package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("pool should not be running after Close")
	}
	ran := 0
	pool.ExecuteAll([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d, want 2 (inline after close)", ran)
	}
}

func TestBands(t *testing.T) {
	tests := []struct {
		name     string
		n, parts int
		want     int
	}{
		{"empty", 0, 4, 0},
		{"smaller than min band", 10, 4, 1},
		{"even split", 128, 4, 4},
		{"uneven", 100, 3, 3},
		{"min band caps parts", 40, 8, 3},
		{"zero parts", 50, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := Bands(tt.n, tt.parts)
			if len(bands) != tt.want {
				t.Fatalf("Bands(%d, %d) = %d bands, want %d", tt.n, tt.parts, len(bands), tt.want)
			}
			next := 0
			for _, b := range bands {
				if b[0] != next || b[1] <= b[0] {
					t.Fatalf("bands not contiguous: %v", bands)
				}
				next = b[1]
			}
			if next != tt.n {
				t.Errorf("bands end at %d, want %d", next, tt.n)
			}
		})
	}
}

func TestWorkerPool_RowsCoversEveryRowOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const n = 333
	var mu sync.Mutex
	hits := make([]int, n)
	pool.Rows(n, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		for y := start; y < end; y++ {
			hits[y]++
		}
	})
	for y, h := range hits {
		if h != 1 {
			t.Fatalf("row %d visited %d times", y, h)
		}
	}
}

func TestWorkerPool_RowsZero(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.Rows(0, func(int, int) { t.Error("fn called for zero rows") })
}

func BenchmarkWorkerPool_Rows(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	b.ReportAllocs()
	for b.Loop() {
		pool.Rows(1080, func(int, int) {})
	}
}
