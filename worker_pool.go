package osm2lanes

import (
	"sync"
)

// workerPool runs jobFunc over queued jobs with a fixed number of goroutines
type workerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

type jobFunc[T any, G any] func(job T) G

func newWorkerPool[T any, G any](numWorkers, jobQueueSize int) *workerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &workerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *workerPool[T, G]) worker(fn jobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- fn(job)
	}
}

// start spawns workers. Call addJob for every job, then closeJobs and wait
func (wp *workerPool[T, G]) start(fn jobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(fn)
	}
}

func (wp *workerPool[T, G]) addJob(job T) {
	wp.jobQueue <- job
}

func (wp *workerPool[T, G]) closeJobs() {
	close(wp.jobQueue)
}

// wait blocks until every worker is done and closes results channel
func (wp *workerPool[T, G]) wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *workerPool[T, G]) collectResults() chan G {
	return wp.results
}
