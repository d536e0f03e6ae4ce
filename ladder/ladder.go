// Package ladder is a minimal reference composition of many PriceLevels
// behind a price→level map — the "containing order book" spec §1 names as
// an external collaborator, not part of the per-price-level core. It
// deliberately does nothing beyond find-or-create-the-level-for-this-price
// and list levels best-first per side: no pricing model, no tick size, no
// cross-price sweep logic. Those stay out of scope (spec §1 Non-goals);
// this package exists only to hold PriceLevels the way a real book would,
// and is exercised by its own tests (cmd/demo works on a single PriceLevel
// directly and does not use it).
//
// Grounded on the teacher's internal/engine/orderbook.go, which keeps bids
// and asks as two github.com/tidwall/btree.BTreeG[*PriceLevel] trees
// sorted best-first; adapted here to hold *pricelevel.PriceLevel instead
// of the teacher's float64-priced order slices.
package ladder

import (
	"levelcore/common"
	"levelcore/pricelevel"

	"github.com/tidwall/btree"
)

// Ladder is a one-sided price ladder: a price→*PriceLevel map ordered
// best-first for its side.
type Ladder struct {
	side   common.Side
	clock  pricelevel.Clock
	levels *btree.BTreeG[*pricelevel.PriceLevel]
}

// New creates an empty ladder for side. Bids sort highest price first,
// asks sort lowest price first, exactly as the teacher's two BTreeG
// comparators do.
func New(side common.Side, clock pricelevel.Clock) *Ladder {
	var less func(a, b *pricelevel.PriceLevel) bool
	if side == common.Buy {
		less = func(a, b *pricelevel.PriceLevel) bool { return a.Price() > b.Price() }
	} else {
		less = func(a, b *pricelevel.PriceLevel) bool { return a.Price() < b.Price() }
	}
	return &Ladder{side: side, clock: clock, levels: btree.NewBTreeG(less)}
}

// placeholder is used only to query the tree by price; btree compares on
// Price() alone via the ladder's less function, so a level with just the
// price field populated is a valid search key.
func placeholder(price uint64) *pricelevel.PriceLevel {
	return pricelevel.NewPriceLevel(price, nil)
}

// LevelFor returns the existing level at price, creating one if absent.
func (l *Ladder) LevelFor(price uint64) *pricelevel.PriceLevel {
	if existing, ok := l.levels.Get(placeholder(price)); ok {
		return existing
	}
	level := pricelevel.NewPriceLevel(price, l.clock)
	l.levels.Set(level)
	return level
}

// Best returns the best (highest bid / lowest ask) non-empty level, if any.
// Levels are ordered best-first by Items, so the first non-empty entry
// wins.
func (l *Ladder) Best() (*pricelevel.PriceLevel, bool) {
	for _, level := range l.levels.Items() {
		if !level.IsEmpty() {
			return level, true
		}
	}
	return nil, false
}

// DropEmpty removes levels with no resting orders; a containing book
// calls this after matching to keep the ladder from accumulating dead
// price points.
func (l *Ladder) DropEmpty() {
	for _, level := range l.levels.Items() {
		if level.IsEmpty() {
			l.levels.Delete(level)
		}
	}
}

// Levels lists every level currently tracked, best-first. Satisfies
// monitor.Registry.
func (l *Ladder) Levels() []*pricelevel.PriceLevel {
	return l.levels.Items()
}
