// Package monitor runs a background statistics reporter over a set of
// price levels. It is ambient infrastructure, not a spec component: a
// containing order book (or an operator console) wires it up to get a
// periodic structured log of each level's statistics without polling
// PriceLevel.Snapshot from the request path.
//
// Adapted from the teacher's internal/worker.go WorkerPool/tomb.Tomb
// supervision pattern, generalized from "drain a task channel" to
// "tick and snapshot a registry of levels".
package monitor

import (
	"sync"
	"time"

	"levelcore/pricelevel"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

// Registry exposes the levels a Reporter should visit each tick. A
// containing order book's price ladder satisfies this trivially.
type Registry interface {
	Levels() []*pricelevel.PriceLevel
}

// StaticRegistry is a Registry over a fixed slice of levels, handy for
// tests and the demo CLI.
type StaticRegistry []*pricelevel.PriceLevel

func (r StaticRegistry) Levels() []*pricelevel.PriceLevel { return r }

// Reporter periodically logs a snapshot of every level in its registry.
type Reporter struct {
	registry Registry
	interval time.Duration

	mu      sync.Mutex
	running bool
	t       *tomb.Tomb
}

func NewReporter(registry Registry, interval time.Duration) *Reporter {
	return &Reporter{registry: registry, interval: interval}
}

// Start launches the reporter's background goroutine, supervised by a
// tomb.Tomb exactly as the teacher's WorkerPool supervises its workers.
// Calling Start twice is a no-op.
func (r *Reporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true

	r.t = new(tomb.Tomb)
	r.t.Go(func() error {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.t.Dying():
				return nil
			case <-ticker.C:
				r.reportOnce()
			}
		}
	})
}

// Stop signals the background goroutine to exit and waits for it.
func (r *Reporter) Stop() error {
	r.mu.Lock()
	t := r.t
	running := r.running
	r.running = false
	r.mu.Unlock()

	if !running || t == nil {
		return nil
	}
	t.Kill(nil)
	return t.Wait()
}

func (r *Reporter) reportOnce() {
	for _, level := range r.registry.Levels() {
		snap := level.Snapshot()
		stats := level.Stats()

		event := log.Info().
			Uint64("price", snap.Price).
			Uint64("visibleQuantity", snap.VisibleQuantityTotal).
			Uint64("hiddenQuantity", snap.HiddenQuantityTotal).
			Int("orderCount", snap.OrderCount).
			Uint64("ordersExecuted", stats.OrdersExecuted()).
			Uint64("quantityExecuted", stats.QuantityExecuted())

		if avg, ok := stats.AverageExecutionPrice(); ok {
			event = event.Float64("averageExecutionPrice", avg)
		}
		event.Msg("price level snapshot")
	}
}
