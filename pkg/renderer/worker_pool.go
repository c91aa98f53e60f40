package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-recursive-raytracer/pkg/canvas"
)

// BandTask is one horizontal strip of the canvas
type BandTask struct {
	TaskID int // for deterministic ordering
	Band   Band
}

// BandResult reports a finished band
type BandResult struct {
	TaskID int
	Pixels int
}

// WorkerPool renders bands in parallel. Every band covers rows no other
// band touches, so workers write straight into the shared canvas.
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders the bands it pulls from the task queue
type Worker struct {
	ID          int
	tracer      *Raytracer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a pool sized for numTasks bands. A non-positive
// numWorkers uses one worker per CPU.
func NewWorkerPool(world World, camera *Camera, target *canvas.Canvas, numTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, numTasks),   // buffer for every band
		resultQueue: make(chan BandResult, numTasks), // buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			tracer:      NewRaytracer(world, camera, target),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start launches every worker
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued bands to finish and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask queues a band
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult blocks for the next finished band
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		pixels := w.tracer.RenderBand(task.Band)
		w.resultQueue <- BandResult{TaskID: task.TaskID, Pixels: pixels}
	}
}
