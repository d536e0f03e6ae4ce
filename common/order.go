package common

// OrderKind tags which variant an Order carries. Fields that do not apply
// to a given kind are left zero-valued; see the accessors below for the
// kind-aware reads callers should use instead of touching fields directly.
type OrderKind int

const (
	Standard OrderKind = iota
	Iceberg
	PostOnly
	TrailingStop
	Pegged
	MarketToLimit
	Reserve
)

// Order is the sum type over every resting-order variant a PriceLevel
// handles. Orders are immutable once enqueued: amendments build a
// replacement value rather than mutating fields in place (see
// pricelevel.PriceLevel.UpdateOrder and MatchAgainst below).
type Order struct {
	Kind        OrderKind
	ID          OrderId
	Price       uint64
	Side        Side
	Timestamp   uint64
	TimeInForce TimeInForce

	// Standard / PostOnly / TrailingStop / Pegged / MarketToLimit.
	Quantity uint64

	// Iceberg / Reserve.
	VisibleQuantity uint64
	HiddenQuantity  uint64

	// TrailingStop.
	TrailAmount        uint64
	LastReferencePrice uint64

	// Pegged.
	ReferencePriceOffset int64
	ReferencePriceType   PegReferenceType

	// Reserve.
	ReplenishThreshold uint64
	ReplenishAmount    *uint64
	AutoReplenish      bool
}

func NewStandardOrder(id OrderId, price uint64, side Side, quantity uint64, timestamp uint64, tif TimeInForce) Order {
	return Order{Kind: Standard, ID: id, Price: price, Side: side, Quantity: quantity, Timestamp: timestamp, TimeInForce: tif}
}

func NewPostOnlyOrder(id OrderId, price uint64, side Side, quantity uint64, timestamp uint64, tif TimeInForce) Order {
	return Order{Kind: PostOnly, ID: id, Price: price, Side: side, Quantity: quantity, Timestamp: timestamp, TimeInForce: tif}
}

func NewMarketToLimitOrder(id OrderId, price uint64, side Side, quantity uint64, timestamp uint64, tif TimeInForce) Order {
	return Order{Kind: MarketToLimit, ID: id, Price: price, Side: side, Quantity: quantity, Timestamp: timestamp, TimeInForce: tif}
}

func NewTrailingStopOrder(id OrderId, price uint64, side Side, quantity, trailAmount, lastReferencePrice uint64, timestamp uint64, tif TimeInForce) Order {
	return Order{
		Kind: TrailingStop, ID: id, Price: price, Side: side, Quantity: quantity,
		TrailAmount: trailAmount, LastReferencePrice: lastReferencePrice,
		Timestamp: timestamp, TimeInForce: tif,
	}
}

func NewPeggedOrder(id OrderId, price uint64, side Side, quantity uint64, offset int64, refType PegReferenceType, timestamp uint64, tif TimeInForce) Order {
	return Order{
		Kind: Pegged, ID: id, Price: price, Side: side, Quantity: quantity,
		ReferencePriceOffset: offset, ReferencePriceType: refType,
		Timestamp: timestamp, TimeInForce: tif,
	}
}

func NewIcebergOrder(id OrderId, price uint64, side Side, visible, hidden uint64, timestamp uint64, tif TimeInForce) Order {
	return Order{
		Kind: Iceberg, ID: id, Price: price, Side: side,
		VisibleQuantity: visible, HiddenQuantity: hidden,
		Timestamp: timestamp, TimeInForce: tif,
	}
}

func NewReserveOrder(id OrderId, price uint64, side Side, visible, hidden, replenishThreshold uint64, replenishAmount *uint64, autoReplenish bool, timestamp uint64, tif TimeInForce) Order {
	return Order{
		Kind: Reserve, ID: id, Price: price, Side: side,
		VisibleQuantity: visible, HiddenQuantity: hidden,
		ReplenishThreshold: replenishThreshold, ReplenishAmount: replenishAmount, AutoReplenish: autoReplenish,
		Timestamp: timestamp, TimeInForce: tif,
	}
}

// VisibleQty is the portion of the order eligible for immediate matching.
func (o Order) VisibleQty() uint64 {
	switch o.Kind {
	case Iceberg, Reserve:
		return o.VisibleQuantity
	default:
		return o.Quantity
	}
}

// HiddenQty is the reserve portion not shown to the market.
func (o Order) HiddenQty() uint64 {
	switch o.Kind {
	case Iceberg, Reserve:
		return o.HiddenQuantity
	default:
		return 0
	}
}

func (o Order) IsPostOnly() bool   { return o.Kind == PostOnly }
func (o Order) IsImmediate() bool  { return o.TimeInForce.IsImmediate() }
func (o Order) IsFillOrKill() bool { return o.TimeInForce.Kind == FillOrKill }

// WithQuantity returns a copy of the order with its resting quantity
// amended to newQty: for Iceberg and Reserve orders this replaces
// VisibleQuantity (hidden is untouched); for every other kind it replaces
// Quantity directly.
func (o Order) WithQuantity(newQty uint64) Order {
	u := o
	switch o.Kind {
	case Iceberg, Reserve:
		u.VisibleQuantity = newQty
	default:
		u.Quantity = newQty
	}
	return u
}

// MatchStep is the result of consuming one maker's resting quantity
// against an incoming aggressive quantity, per the matching contract each
// order variant implements in MatchAgainst.
type MatchStep struct {
	Consumed      uint64
	Updated       *Order
	HiddenReduced uint64
	NewRemaining  uint64
}

// MatchAgainst applies this order's variant-specific matching contract
// against an incoming remaining quantity. See spec §4.3 for the full
// per-variant table; this is its direct implementation.
func (o Order) MatchAgainst(incoming uint64) MatchStep {
	switch o.Kind {
	case Iceberg:
		return o.matchIceberg(incoming)
	case Reserve:
		return o.matchReserve(incoming)
	default:
		return o.matchSingleQuantity(incoming)
	}
}

// matchSingleQuantity covers Standard, PostOnly, TrailingStop, Pegged and
// MarketToLimit: every variant backed by a single Quantity field.
func (o Order) matchSingleQuantity(incoming uint64) MatchStep {
	q := o.Quantity
	if q <= incoming {
		return MatchStep{Consumed: q, Updated: nil, HiddenReduced: 0, NewRemaining: incoming - q}
	}
	updated := o
	updated.Quantity = q - incoming
	return MatchStep{Consumed: incoming, Updated: &updated, HiddenReduced: 0, NewRemaining: 0}
}

func (o Order) matchIceberg(incoming uint64) MatchStep {
	v, h := o.VisibleQuantity, o.HiddenQuantity
	if v > incoming {
		updated := o
		updated.VisibleQuantity = v - incoming
		return MatchStep{Consumed: incoming, Updated: &updated, HiddenReduced: 0, NewRemaining: 0}
	}

	newRemaining := incoming - v
	if h == 0 {
		return MatchStep{Consumed: v, Updated: nil, HiddenReduced: 0, NewRemaining: newRemaining}
	}

	r := min(h, v)
	updated := o
	updated.VisibleQuantity = r
	updated.HiddenQuantity = h - r
	return MatchStep{Consumed: v, Updated: &updated, HiddenReduced: r, NewRemaining: newRemaining}
}

func (o Order) matchReserve(incoming uint64) MatchStep {
	v, h := o.VisibleQuantity, o.HiddenQuantity
	if v > incoming {
		updated := o
		updated.VisibleQuantity = v - incoming
		return MatchStep{Consumed: incoming, Updated: &updated, HiddenReduced: 0, NewRemaining: 0}
	}

	newRemaining := incoming - v
	if h == 0 {
		return MatchStep{Consumed: v, Updated: nil, HiddenReduced: 0, NewRemaining: newRemaining}
	}
	if !o.AutoReplenish {
		// Hidden remains but replenishment is disabled: the order leaves the
		// book with its reserve unexpressed (see O2).
		return MatchStep{Consumed: v, Updated: nil, HiddenReduced: 0, NewRemaining: newRemaining}
	}

	// ReplenishThreshold gates replenishment on the post-fill visible size;
	// full consumption of the visible slice always leaves that size at 0,
	// so replenishment always fires on this path regardless of threshold.
	// The threshold only ever matters on the partial-consumption branch
	// above, which never replenishes (O1).
	amt := v
	if o.ReplenishAmount != nil {
		amt = *o.ReplenishAmount
	}
	r := min(h, amt)
	updated := o
	updated.VisibleQuantity = r
	updated.HiddenQuantity = h - r
	return MatchStep{Consumed: v, Updated: &updated, HiddenReduced: r, NewRemaining: newRemaining}
}
