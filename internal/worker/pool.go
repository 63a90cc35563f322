// Package worker provides a generic worker pool for fanning independent
// jobs, such as perft subtrees, out over goroutines.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Job is one unit of work.
type Job[In any] struct {
	Value In
	Index int // Submission index for tracking
}

// Result is the outcome of processing a Job.
type Result[Out any] struct {
	Value Out
	Index int
	Err   error
}

// Func processes a single job.
type Func[In, Out any] func(job Job[In]) Result[Out]

type settings struct {
	numWorkers int
	bufferSize int
}

// PoolOption configures a Pool.
type PoolOption func(*settings)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *settings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *settings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// Pool runs Func over submitted jobs on a fixed set of goroutines.
type Pool[In, Out any] struct {
	settings
	jobs     chan Job[In]
	results  chan Result[Out]
	fn       Func[In, Out]
	wg       sync.WaitGroup
	stopFlag int32 // Atomic flag for early termination
}

// NewPool creates a pool. fn is required; by default the pool has one
// worker and a buffer of 10.
func NewPool[In, Out any](fn Func[In, Out], opts ...PoolOption) *Pool[In, Out] {
	s := settings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&s)
	}
	return &Pool[In, Out]{
		settings: s,
		jobs:     make(chan Job[In], s.bufferSize),
		results:  make(chan Result[Out], s.bufferSize),
		fn:       fn,
	}
}

// Start starts the worker goroutines.
func (p *Pool[In, Out]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool[In, Out]) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain without processing
		}
		p.results <- p.fn(job)
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool[In, Out]) Submit(job Job[In]) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking. It returns false if the buffer
// is full or the pool is stopped.
func (p *Pool[In, Out]) TrySubmit(job Job[In]) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued jobs instead of processing them.
func (p *Pool[In, Out]) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool[In, Out]) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close stops accepting jobs, waits for the workers and then closes the
// result channel.
func (p *Pool[In, Out]) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on.
func (p *Pool[In, Out]) Results() <-chan Result[Out] {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[In, Out]) NumWorkers() int {
	return p.numWorkers
}

// Run processes every input on a new pool and returns the results in input
// order.
func Run[In, Out any](inputs []In, fn Func[In, Out], opts ...PoolOption) []Result[Out] {
	p := NewPool(fn, opts...)
	p.Start()

	go func() {
		for i, in := range inputs {
			p.Submit(Job[In]{Value: in, Index: i})
		}
		p.Close()
	}()

	out := make([]Result[Out], 0, len(inputs))
	for r := range p.Results() {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}
