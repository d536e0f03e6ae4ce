package pricelevel

import (
	"fmt"
	"sync/atomic"

	"levelcore/common"
	"levelcore/execution"
)

// PriceLevel owns every resting order at exactly one price. Price never
// changes after construction (I6): any update that would change it
// removes the order and hands it back to the caller for re-insertion at
// another level.
type PriceLevel struct {
	price uint64

	visibleQuantityTotal atomic.Uint64
	hiddenQuantityTotal  atomic.Uint64
	orderCount           atomic.Int64

	orders *OrderQueue
	stats  *Statistics
	clock  Clock
}

// NewPriceLevel creates an empty level at price. A nil clock defaults to
// SystemClock.
func NewPriceLevel(price uint64, clock Clock) *PriceLevel {
	if clock == nil {
		clock = SystemClock{}
	}
	return &PriceLevel{
		price:  price,
		orders: NewOrderQueue(),
		stats:  NewStatistics(clock),
		clock:  clock,
	}
}

func (pl *PriceLevel) Price() uint64                { return pl.price }
func (pl *PriceLevel) VisibleQuantityTotal() uint64 { return pl.visibleQuantityTotal.Load() }
func (pl *PriceLevel) HiddenQuantityTotal() uint64  { return pl.hiddenQuantityTotal.Load() }
func (pl *PriceLevel) OrderCount() int64            { return pl.orderCount.Load() }
func (pl *PriceLevel) Stats() *Statistics           { return pl.stats }
func (pl *PriceLevel) IsEmpty() bool                { return pl.orders.IsEmpty() }

// adjustVisible/adjustHidden apply a signed delta to an aggregate total.
// uint64(delta) for a negative int64 produces its two's-complement bit
// pattern, so Add(uint64(delta)) is a correct unsigned subtraction modulo
// 2^64 — standard trick for atomic counters that only ever move by a
// bounded signed amount.
func (pl *PriceLevel) adjustVisible(delta int64) { pl.visibleQuantityTotal.Add(uint64(delta)) }
func (pl *PriceLevel) adjustHidden(delta int64)  { pl.hiddenQuantityTotal.Add(uint64(delta)) }

// AddOrder enqueues a new resting order at the tail, updates the
// aggregate totals and statistics, and returns the stored record as the
// caller's handle to it. Business-rule validation (post-only crossing,
// expiry) is the caller's responsibility; AddOrder never fails.
func (pl *PriceLevel) AddOrder(o common.Order) common.Order {
	pl.adjustVisible(int64(o.VisibleQty()))
	pl.adjustHidden(int64(o.HiddenQty()))
	pl.orderCount.Add(1)
	pl.stats.RecordOrderAdded()
	pl.orders.Push(o)
	return o
}

// removeAccounting backs out o's contribution to the aggregate totals and
// count, and records the removal in statistics. Used by every UpdateOrder
// path that takes an order off the book (Cancel, UpdatePrice and their
// composites) — not by UpdateQuantity, which keeps the order resting.
func (pl *PriceLevel) removeAccounting(o common.Order) {
	pl.adjustVisible(-int64(o.VisibleQty()))
	pl.adjustHidden(-int64(o.HiddenQty()))
	pl.orderCount.Add(-1)
	pl.stats.RecordOrderRemoved()
}

// UpdateOrder dispatches an OrderUpdate per spec §4.4. It never panics;
// NotFound is represented as (nil, nil), not an error, since a concurrent
// cancellation racing this call is a legitimate outcome rather than a
// failure.
func (pl *PriceLevel) UpdateOrder(update common.OrderUpdate) (*common.Order, error) {
	switch update.Kind {
	case common.Cancel:
		return pl.cancel(update.OrderID)
	case common.UpdatePrice:
		return pl.updatePrice(update.OrderID, update.NewPrice)
	case common.UpdatePriceAndQuantity:
		if update.NewPrice != pl.price {
			return pl.updatePrice(update.OrderID, update.NewPrice)
		}
		return pl.updateQuantity(update.OrderID, update.NewQuantity)
	case common.UpdateQuantity:
		return pl.updateQuantity(update.OrderID, update.NewQuantity)
	case common.Replace:
		if update.NewPrice != pl.price {
			return pl.updatePrice(update.OrderID, update.NewPrice)
		}
		return pl.updateQuantity(update.OrderID, update.NewQuantity)
	default:
		return nil, fmt.Errorf("pricelevel: unknown update kind %d", update.Kind)
	}
}

func (pl *PriceLevel) cancel(id common.OrderId) (*common.Order, error) {
	removed, ok := pl.orders.Remove(id)
	if !ok {
		return nil, nil
	}
	pl.removeAccounting(removed)
	return &removed, nil
}

func (pl *PriceLevel) updatePrice(id common.OrderId, newPrice uint64) (*common.Order, error) {
	if newPrice == pl.price {
		return nil, common.ErrSamePrice
	}
	removed, ok := pl.orders.Remove(id)
	if !ok {
		return nil, nil
	}
	pl.removeAccounting(removed)
	return &removed, nil
}

func (pl *PriceLevel) updateQuantity(id common.OrderId, newQuantity uint64) (*common.Order, error) {
	removed, ok := pl.orders.Remove(id)
	if !ok {
		return nil, nil
	}
	replacement := removed.WithQuantity(newQuantity)
	pl.adjustVisible(int64(replacement.VisibleQty()) - int64(removed.VisibleQty()))
	pl.adjustHidden(int64(replacement.HiddenQty()) - int64(removed.HiddenQty()))
	pl.orders.Push(replacement)
	return &replacement, nil
}

// MatchOrder consumes incoming aggressive quantity against the book in
// strict time priority (spec §4.4). It always returns a valid
// MatchResult and never errors.
func (pl *PriceLevel) MatchOrder(incoming uint64, takerID common.OrderId, txnSource TransactionIDSource) *execution.MatchResult {
	result := execution.NewMatchResult(takerID, incoming)
	remaining := incoming

	for remaining > 0 {
		maker, ok := pl.orders.Pop()
		if !ok {
			break
		}

		step := maker.MatchAgainst(remaining)

		if step.Consumed > 0 {
			pl.adjustVisible(-int64(step.Consumed))

			result.AddTransaction(execution.Transaction{
				ID:           txnSource.Next(),
				TakerOrderID: takerID,
				MakerOrderID: maker.ID,
				Price:        pl.price,
				Quantity:     step.Consumed,
				TakerSide:    maker.Side.Opposite(),
				Timestamp:    pl.clock.NowMillis(),
			})
			if step.Updated == nil {
				result.AddFilledOrderID(maker.ID)
			}
			pl.stats.RecordExecution(step.Consumed, pl.price, maker.Timestamp)
		}

		remaining = step.NewRemaining

		if step.Updated != nil {
			if step.HiddenReduced > 0 {
				pl.adjustHidden(-int64(step.HiddenReduced))
				pl.adjustVisible(int64(step.HiddenReduced))
			}
			pl.orders.Push(*step.Updated)
		} else {
			pl.orderCount.Add(-1)
			// A reserve order dropped with auto_replenish=false (O2) leaves
			// unexpressed hidden quantity behind; back it out of the total.
			if maker.HiddenQty() > 0 && step.HiddenReduced == 0 {
				pl.adjustHidden(-int64(maker.HiddenQty()))
			}
		}
	}

	result.RemainingQuantity = remaining
	return result
}

// Snapshot returns a self-consistent point-in-time copy of the level: the
// totals are computed from the same order list handed back, so OrderCount
// and the visible/hidden totals always agree with len(Orders) and their
// per-order aggregates even if a concurrent match is in flight around the
// Snapshot call.
func (pl *PriceLevel) Snapshot() PriceLevelSnapshot {
	orders := pl.orders.ToSlice()

	var visible, hidden uint64
	for _, o := range orders {
		visible += o.VisibleQty()
		hidden += o.HiddenQty()
	}

	return PriceLevelSnapshot{
		Price:                pl.price,
		VisibleQuantityTotal: visible,
		HiddenQuantityTotal:  hidden,
		OrderCount:           len(orders),
		Orders:               orders,
	}
}
