package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Creation
// =============================================================================

func TestPool_Workers(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()

	if pool.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", pool.Workers())
	}
}

func TestPool_DefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -2} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// Run
// =============================================================================

func TestPool_RunVisitsEveryIndexOnce(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	const n = 1000
	var hits [n]atomic.Int32
	pool.Run(n, func(i int) {
		hits[i].Add(1)
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d ran %d times, want 1", i, got)
		}
	}
}

func TestPool_RunZero(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	pool.Run(0, func(int) {
		t.Error("fn called for n = 0")
	})
}

func TestPool_ConcurrentRuns(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Run(100, func(int) { total.Add(1) })
		}()
	}
	wg.Wait()

	if got := total.Load(); got != 800 {
		t.Errorf("total = %d, want 800", got)
	}
}

// =============================================================================
// Close
// =============================================================================

func TestPool_CloseIsIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()
}

func TestPool_RunAfterCloseRunsInline(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	sum := 0
	pool.Run(4, func(i int) { sum += i })
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}
