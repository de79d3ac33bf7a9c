package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"routerorders/internal/core/ports"
)

// deliveryTimeout bounds one background delivery attempt.
const deliveryTimeout = 30 * time.Second

// task is one queued notification delivery.
type task struct {
	kind      string
	reference string
	run       func(ctx context.Context) error
}

// AsyncDispatcher wraps a Notifier with a bounded queue and a fixed worker
// pool. Enqueueing never blocks the caller: when the queue is full the notice
// is dropped and logged, honoring the best-effort contract. Each worker runs
// deliveries detached from the request context so an HTTP response never
// waits on SMTP.
type AsyncDispatcher struct {
	next   ports.Notifier
	queue  chan task
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewAsyncDispatcher creates a dispatcher delivering through next with the
// given queue capacity and worker count.
func NewAsyncDispatcher(
	next ports.Notifier,
	queueSize int,
	workers int,
	logger *slog.Logger,
) *AsyncDispatcher {
	d := &AsyncDispatcher{
		next:   next,
		queue:  make(chan task, queueSize),
		logger: logger.With("component", "notify-dispatcher"),
	}

	for range workers {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// SendOrderConfirmation enqueues an order confirmation notice.
func (d *AsyncDispatcher) SendOrderConfirmation(
	_ context.Context, email string, reference string, snapshot ports.OrderSnapshot,
) error {
	d.enqueue("confirmation", reference, func(ctx context.Context) error {
		return d.next.SendOrderConfirmation(ctx, email, reference, snapshot)
	})
	return nil
}

// SendStatusUpdate enqueues a status update notice.
func (d *AsyncDispatcher) SendStatusUpdate(
	_ context.Context, email string, reference string, status string,
) error {
	d.enqueue("status-update", reference, func(ctx context.Context) error {
		return d.next.SendStatusUpdate(ctx, email, reference, status)
	})
	return nil
}

// SendCancellation enqueues a cancellation notice.
func (d *AsyncDispatcher) SendCancellation(_ context.Context, email string, reference string) error {
	d.enqueue("cancellation", reference, func(ctx context.Context) error {
		return d.next.SendCancellation(ctx, email, reference)
	})
	return nil
}

// SendModification enqueues a modification notice.
func (d *AsyncDispatcher) SendModification(
	_ context.Context, email string, reference string, snapshot ports.OrderSnapshot,
) error {
	d.enqueue("modification", reference, func(ctx context.Context) error {
		return d.next.SendModification(ctx, email, reference, snapshot)
	})
	return nil
}

// Close stops accepting new notices and waits for queued deliveries to
// finish.
func (d *AsyncDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *AsyncDispatcher) enqueue(kind string, reference string, run func(ctx context.Context) error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("notice dropped, dispatcher closed", "kind", kind, "reference", reference)
		return
	}

	select {
	case d.queue <- task{kind: kind, reference: reference, run: run}:
	default:
		d.logger.Warn("notice dropped, queue full", "kind", kind, "reference", reference)
	}
}

func (d *AsyncDispatcher) worker() {
	defer d.wg.Done()

	for t := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		if err := t.run(ctx); err != nil {
			d.logger.Warn("notice delivery failed",
				"kind", t.kind, "reference", t.reference, "error", err)
		}
		cancel()
	}
}
