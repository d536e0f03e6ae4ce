// Package execution holds the value records matching emits: Transaction
// for a single fill and MatchResult for the aggregate outcome of one
// match_order call.
package execution

import "levelcore/common"

// TransactionId is a process-wide monotonically increasing counter value
// shared across all price levels (see pricelevel.TransactionIDSource).
type TransactionId = uint64

// Transaction records a single fill between one taker and one maker at
// one price for one quantity.
type Transaction struct {
	ID           TransactionId
	TakerOrderID common.OrderId
	MakerOrderID common.OrderId
	Price        uint64
	Quantity     uint64
	TakerSide    common.Side
	Timestamp    uint64
}

// MakerSide is the opposite of the taker's side.
func (t Transaction) MakerSide() common.Side {
	return t.TakerSide.Opposite()
}

// TotalValue is price * quantity.
func (t Transaction) TotalValue() uint64 {
	return t.Price * t.Quantity
}
