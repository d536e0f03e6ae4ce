package execution

import "levelcore/common"

// MatchResult is the outcome of a single match_order call: every fill in
// FIFO order, what remains of the incoming quantity, and the makers that
// were fully consumed from the book.
type MatchResult struct {
	TakerOrderID      common.OrderId
	Transactions      []Transaction
	RemainingQuantity uint64
	FilledOrderIDs    []common.OrderId
}

// NewMatchResult starts an empty result for an incoming order of the
// given initial quantity.
func NewMatchResult(takerOrderID common.OrderId, initialQuantity uint64) *MatchResult {
	return &MatchResult{
		TakerOrderID:      takerOrderID,
		RemainingQuantity: initialQuantity,
	}
}

// AddTransaction appends a fill in FIFO order. RemainingQuantity is set
// once by the caller when matching terminates (see
// pricelevel.PriceLevel.MatchOrder), not recomputed per-transaction, so
// it always reflects the matching loop's own authoritative count.
func (r *MatchResult) AddTransaction(t Transaction) {
	r.Transactions = append(r.Transactions, t)
}

// AddFilledOrderID records a maker that was fully consumed from the book
// during this call.
func (r *MatchResult) AddFilledOrderID(id common.OrderId) {
	r.FilledOrderIDs = append(r.FilledOrderIDs, id)
}

// IsComplete is true once the incoming order's quantity has been fully
// absorbed.
func (r *MatchResult) IsComplete() bool {
	return r.RemainingQuantity == 0
}

// TotalExecutedQuantity sums the quantity of every fill.
func (r *MatchResult) TotalExecutedQuantity() uint64 {
	var total uint64
	for _, t := range r.Transactions {
		total += t.Quantity
	}
	return total
}

// TotalExecutedValue sums price*quantity across every fill.
func (r *MatchResult) TotalExecutedValue() uint64 {
	var total uint64
	for _, t := range r.Transactions {
		total += t.TotalValue()
	}
	return total
}

// AveragePrice is TotalExecutedValue / TotalExecutedQuantity. The second
// return value is false when nothing executed (undefined average).
func (r *MatchResult) AveragePrice() (float64, bool) {
	qty := r.TotalExecutedQuantity()
	if qty == 0 {
		return 0, false
	}
	return float64(r.TotalExecutedValue()) / float64(qty), true
}
