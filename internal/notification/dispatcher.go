package notification

import (
	"context"
	"time"
)

// Clock abstracts the dispatcher's time source so tests drive auto-hide
// deterministically instead of sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Dispatcher auto-dismisses expired notifications. It keeps timer handling
// in one cancelable loop instead of scattering per-notification callbacks.
type Dispatcher struct {
	queue    *Queue
	clock    Clock
	interval time.Duration
	gauge    DepthGauge
}

// DepthGauge receives the queue depth after each sweep. Satisfied by
// prometheus gauges via platform metrics.
type DepthGauge interface {
	Set(v float64)
}

type DispatcherOption func(d *Dispatcher)

func WithClock(clock Clock) DispatcherOption {
	return func(d *Dispatcher) {
		d.clock = clock
	}
}

func WithInterval(interval time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

func WithDepthGauge(gauge DepthGauge) DispatcherOption {
	return func(d *Dispatcher) {
		d.gauge = gauge
	}
}

func NewDispatcher(queue *Queue, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{queue: queue, clock: SystemClock{}, interval: time.Second}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run sweeps the queue on each tick until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Tick performs one sweep at the clock's current time.
func (d *Dispatcher) Tick() int {
	removed := d.queue.Sweep(d.clock.Now())
	if d.gauge != nil {
		d.gauge.Set(float64(d.queue.Len()))
	}
	return removed
}
