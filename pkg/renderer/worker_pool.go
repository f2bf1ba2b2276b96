package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Row int // Logical row index (camera space, 0 = screen bottom)
}

// RowResult contains the result from rendering a scanline
type RowResult struct {
	Row     int
	Samples int // Samples taken for the row
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	render      func(row int) int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool that renders rows with the given
// function. Queues are sized for the full image so submission never blocks.
func NewWorkerPool(numWorkers, height int, render func(row int) int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
		render:      render,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// Submit submits a scanline task to the worker pool
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		samples := wp.render(task.Row)
		wp.resultQueue <- RowResult{Row: task.Row, Samples: samples}
	}
}
