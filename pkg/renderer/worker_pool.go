package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

const (
	// workerIdleTimeout is passed to the pool for workers waiting on an empty queue
	workerIdleTimeout = time.Second
	// workerQueueSize bounds pending tasks; Run submits at most one task per worker
	workerQueueSize = 64
)

// renderPool is shared by every Session in the process. Its workers live as
// long as the process, so repeated renders reuse them instead of starting more.
var renderPool = NewWorkerPool()

// WorkerPool fans scanline tasks out over a set of goroutines that only grows.
//
// Workers are started on first use and added when a Run asks for more than
// are running. They are never stopped: the underlying pool's Stop cannot
// reliably end its workers, so a pool is meant to be created once and reused.
type WorkerPool struct {
	mu   sync.Mutex
	pool worker.DynamicWorkerPool
}

// NewWorkerPool creates an empty worker pool
func NewWorkerPool() *WorkerPool {
	return &WorkerPool{}
}

// resolveWorkers maps a configured worker count to an actual one (0 = CPU count)
func resolveWorkers(numWorkers int) int {
	if numWorkers <= 0 {
		return runtime.NumCPU()
	}
	return numWorkers
}

// GetNumWorkers returns the number of workers started so far
func (wp *WorkerPool) GetNumWorkers() int {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.pool == nil {
		return 0
	}
	return wp.pool.GetMaxWorkers()
}

// ensureWorkers grows the pool to at least n workers. Callers hold wp.mu.
func (wp *WorkerPool) ensureWorkers(n int) {
	if wp.pool == nil {
		wp.pool = worker.NewDynamicWorkerPool(n, workerQueueSize, workerIdleTimeout)
		return
	}
	if missing := n - wp.pool.GetMaxWorkers(); missing > 0 {
		wp.pool.IncreaseMaxWorkers(missing)
	}
}

// Run calls task for every row in [0, rows) using at most numWorkers
// goroutines (0 = CPU count) and returns when all rows have finished.
// It returns the number of workers used.
//
// Each submitted task claims rows from a shared counter until none are left,
// so concurrency is bounded by the number of tasks rather than pool size.
func (wp *WorkerPool) Run(numWorkers, rows int, task func(row int)) int {
	workers := min(resolveWorkers(numWorkers), max(rows, 1))

	var next atomic.Int64
	var wg sync.WaitGroup

	wp.mu.Lock()
	wp.ensureWorkers(workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		wp.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				for {
					row := int(next.Add(1) - 1)
					if row >= rows {
						return nil, nil
					}
					task(row)
				}
			},
		})
	}
	wp.mu.Unlock()

	wg.Wait()
	return workers
}
