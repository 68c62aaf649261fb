package fanout

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/metrics"
)

// Dispatcher runs checkout side effects (lead sink, conversion reporting,
// webhook relay) off the request path on a fixed pool of workers.
//
// Submission is non-blocking: when the queue is full the task is dropped and
// counted, never stalling the HTTP response. Each task runs under its own
// timeout so a hanging external dependency cannot pin a worker forever.

type task struct {
	name string
	run  func(ctx context.Context) error
}

type Dispatcher struct {
	jobs    chan task
	wg      sync.WaitGroup
	timeout time.Duration
	metrics *metrics.CheckoutMetrics

	closeOnce sync.Once
}

func NewDispatcher(workers, queueSize int, taskTimeout time.Duration, m *metrics.CheckoutMetrics) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	d := &Dispatcher{
		jobs:    make(chan task, queueSize),
		timeout: taskTimeout,
		metrics: m,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Submit enqueues a named task. It returns false when the queue is full and
// the task was dropped.
func (d *Dispatcher) Submit(name string, run func(ctx context.Context) error) bool {
	select {
	case d.jobs <- task{name: name, run: run}:
		return true
	default:
		log.Printf("[fanout][dispatcher] queue full, dropping task=%s", name)
		if d.metrics != nil {
			d.metrics.FanoutTasksTotal.WithLabelValues(name, "dropped").Inc()
		}
		return false
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for t := range d.jobs {
		d.execute(t)
	}
}

func (d *Dispatcher) execute(t task) {
	ctx := context.Background()
	cancel := context.CancelFunc(func() {})
	if d.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
	}
	defer cancel()

	start := time.Now()
	err := t.run(ctx)
	elapsed := time.Since(start)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		log.Printf("[fanout][dispatcher] task failed task=%s elapsed=%s err=%v", t.name, elapsed, err)
	} else {
		log.Printf("[fanout][dispatcher] task done task=%s elapsed=%s", t.name, elapsed)
	}
	if d.metrics != nil {
		d.metrics.FanoutTasksTotal.WithLabelValues(t.name, outcome).Inc()
		d.metrics.FanoutTaskDuration.WithLabelValues(t.name).Observe(elapsed.Seconds())
	}
}
