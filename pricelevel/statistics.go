package pricelevel

import "sync/atomic"

// Statistics holds the monotonic counters a PriceLevel updates as a side
// effect of every mutation (spec §4.2). All fields are atomic and safe to
// read concurrently with updates; relaxed loads/stores are sufficient
// here since these counters are read-for-display, not used to establish
// happens-before with queue contents (that role belongs to the
// visible/hidden/count totals on PriceLevel itself).
type Statistics struct {
	ordersAdded       atomic.Uint64
	ordersRemoved     atomic.Uint64
	ordersExecuted    atomic.Uint64
	quantityExecuted  atomic.Uint64
	valueExecuted     atomic.Uint64
	lastExecutionTime atomic.Uint64
	firstArrivalTime  atomic.Uint64
	sumWaitingTime    atomic.Uint64

	clock Clock
}

func NewStatistics(clock Clock) *Statistics {
	s := &Statistics{clock: clock}
	s.firstArrivalTime.Store(clock.NowMillis())
	return s
}

func (s *Statistics) RecordOrderAdded()   { s.ordersAdded.Add(1) }
func (s *Statistics) RecordOrderRemoved() { s.ordersRemoved.Add(1) }

// RecordExecution records one fill against a maker whose arrival
// timestamp was makerTimestamp. Per spec §4.4's note, callers should skip
// this entirely when quantity is 0 rather than rely on it being a no-op.
func (s *Statistics) RecordExecution(quantity, price, makerTimestamp uint64) {
	now := s.clock.NowMillis()

	s.ordersExecuted.Add(1)
	s.quantityExecuted.Add(quantity)
	s.valueExecuted.Add(quantity * price)
	s.lastExecutionTime.Store(now)

	if makerTimestamp > 0 {
		waiting := uint64(0)
		if now > makerTimestamp {
			waiting = now - makerTimestamp
		}
		s.sumWaitingTime.Add(waiting)
	}
}

func (s *Statistics) OrdersAdded() uint64       { return s.ordersAdded.Load() }
func (s *Statistics) OrdersRemoved() uint64     { return s.ordersRemoved.Load() }
func (s *Statistics) OrdersExecuted() uint64    { return s.ordersExecuted.Load() }
func (s *Statistics) QuantityExecuted() uint64  { return s.quantityExecuted.Load() }
func (s *Statistics) ValueExecuted() uint64     { return s.valueExecuted.Load() }
func (s *Statistics) LastExecutionTime() uint64 { return s.lastExecutionTime.Load() }
func (s *Statistics) FirstArrivalTime() uint64  { return s.firstArrivalTime.Load() }
func (s *Statistics) SumWaitingTime() uint64    { return s.sumWaitingTime.Load() }

// AverageExecutionPrice is ValueExecuted/QuantityExecuted; false when
// nothing has executed yet.
func (s *Statistics) AverageExecutionPrice() (float64, bool) {
	qty := s.quantityExecuted.Load()
	if qty == 0 {
		return 0, false
	}
	return float64(s.valueExecuted.Load()) / float64(qty), true
}

// AverageWaitingTime is SumWaitingTime/OrdersExecuted; false when nothing
// has executed yet.
func (s *Statistics) AverageWaitingTime() (float64, bool) {
	count := s.ordersExecuted.Load()
	if count == 0 {
		return 0, false
	}
	return float64(s.sumWaitingTime.Load()) / float64(count), true
}

// TimeSinceLastExecution is now - LastExecutionTime; false if nothing has
// executed yet.
func (s *Statistics) TimeSinceLastExecution(now uint64) (uint64, bool) {
	last := s.lastExecutionTime.Load()
	if last == 0 {
		return 0, false
	}
	if now < last {
		return 0, true
	}
	return now - last, true
}

// Reset rebases every counter to zero and stamps a new first-arrival
// time. Supplemental to spec.md (see SPEC_FULL.md §3): useful to an
// operator rebasing a level's counters at session rollover.
func (s *Statistics) Reset() {
	s.ordersAdded.Store(0)
	s.ordersRemoved.Store(0)
	s.ordersExecuted.Store(0)
	s.quantityExecuted.Store(0)
	s.valueExecuted.Store(0)
	s.lastExecutionTime.Store(0)
	s.sumWaitingTime.Store(0)
	s.firstArrivalTime.Store(s.clock.NowMillis())
}
