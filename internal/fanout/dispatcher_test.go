package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestMetrics() *metrics.CheckoutMetrics {
	return metrics.NewCheckoutMetrics(prometheus.NewRegistry())
}

func TestDispatcher_RunsSubmittedTasks(t *testing.T) {
	m := newTestMetrics()
	d := NewDispatcher(2, 8, time.Second, m)

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		if ok := d.Submit("lead_sink", func(context.Context) error {
			ran.Add(1)
			return nil
		}); !ok {
			t.Fatal("submit rejected with free queue capacity")
		}
	}
	d.Close()

	if got := ran.Load(); got != 5 {
		t.Fatalf("expected 5 tasks to run, got %d", got)
	}
	if got := testutil.ToFloat64(m.FanoutTasksTotal.WithLabelValues("lead_sink", "ok")); got != 5 {
		t.Fatalf("expected 5 ok outcomes, got %v", got)
	}
}

func TestDispatcher_CountsFailures(t *testing.T) {
	m := newTestMetrics()
	d := NewDispatcher(1, 4, time.Second, m)

	d.Submit("capi_lead", func(context.Context) error {
		return errors.New("boom")
	})
	d.Close()

	if got := testutil.ToFloat64(m.FanoutTasksTotal.WithLabelValues("capi_lead", "error")); got != 1 {
		t.Fatalf("expected 1 error outcome, got %v", got)
	}
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	m := newTestMetrics()
	d := NewDispatcher(1, 1, time.Second, m)

	block := make(chan struct{})
	// Occupy the single worker, then fill the single queue slot.
	d.Submit("webhook_lead", func(context.Context) error {
		<-block
		return nil
	})
	for {
		if ok := d.Submit("webhook_lead", func(context.Context) error { return nil }); !ok {
			break
		}
	}

	if got := testutil.ToFloat64(m.FanoutTasksTotal.WithLabelValues("webhook_lead", "dropped")); got < 1 {
		t.Fatalf("expected at least 1 dropped outcome, got %v", got)
	}

	close(block)
	d.Close()
}

func TestDispatcher_TaskTimeout(t *testing.T) {
	m := newTestMetrics()
	d := NewDispatcher(1, 1, 10*time.Millisecond, m)

	d.Submit("capi_purchase", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	d.Close()

	if got := testutil.ToFloat64(m.FanoutTasksTotal.WithLabelValues("capi_purchase", "error")); got != 1 {
		t.Fatalf("expected the timed-out task to count as error, got %v", got)
	}
}
