package bench

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

// Load keeps CPU cores busy while the benchmark runs, so frame times can be
// measured under contention instead of on an idle machine.
type Load struct {
	pool    *ants.Pool
	workers int
	quit    chan struct{}
	wg      sync.WaitGroup
	sink    atomic.Uint64
}

// StartLoad spins up busy-loop workers on a pre-allocated ants pool. With
// workers <= 0, half the CPUs are used.
func StartLoad(workers int) (*Load, error) {
	if workers <= 0 {
		workers = runtime.NumCPU() / 2
		if workers < 1 {
			workers = 1
		}
	}

	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create load pool: %w", err)
	}

	l := &Load{
		pool:    pool,
		workers: workers,
		quit:    make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		l.wg.Add(1)
		if err := pool.Submit(l.spin); err != nil {
			l.wg.Done()
			l.Stop()
			return nil, fmt.Errorf("failed to submit load worker: %w", err)
		}
	}
	return l, nil
}

// Workers reports the number of busy-loop workers.
func (l *Load) Workers() int {
	return l.workers
}

func (l *Load) spin() {
	defer l.wg.Done()
	x := 1.0
	for i := 0; ; i++ {
		x = math.Sqrt(x + float64(i%97))
		if i%1024 == 0 {
			select {
			case <-l.quit:
				// Publish the result so the loop cannot be optimized away.
				l.sink.Store(math.Float64bits(x))
				return
			default:
			}
		}
	}
}

// Stop terminates the workers and releases the pool.
func (l *Load) Stop() {
	close(l.quit)
	l.wg.Wait()
	l.pool.Release()
}
