package pricelevel

import "levelcore/common"

// PriceLevelSnapshot is a point-in-time consistent copy of a PriceLevel:
// self-consistent (every order appears at most once, and the totals here
// equal the listed orders' aggregates) even though it need not be
// mutually atomic with an in-progress match. Supplemental to spec.md (see
// SPEC_FULL.md §3), mirroring the original crate's PriceLevelSnapshot.
type PriceLevelSnapshot struct {
	Price                uint64
	VisibleQuantityTotal uint64
	HiddenQuantityTotal  uint64
	OrderCount           int
	Orders               []common.Order
}

// TotalQuantity is VisibleQuantityTotal + HiddenQuantityTotal.
func (s PriceLevelSnapshot) TotalQuantity() uint64 {
	return s.VisibleQuantityTotal + s.HiddenQuantityTotal
}
