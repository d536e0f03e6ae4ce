// Package textcodec is a human-readable diagnostic codec for orders and
// level snapshots. It lives outside the pricelevel package on purpose:
// spec §1 places "human-readable string codecs for diagnostic I/O" among
// the core's out-of-scope external collaborators, and §6 only promises
// that such codecs "round-trip via field=value;… strings" without the
// core depending on any one representation. Adapted from the teacher's
// internal/net/messages.go wire encoder, swapping its fixed-width binary
// layout for the field=value;... text format the original PriceLevel
// crate's Display/FromStr implementations use (src/price_level/snapshot.rs).
package textcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"levelcore/common"
	"levelcore/pricelevel"
)

var (
	ErrInvalidFormat     = errors.New("textcodec: invalid format")
	ErrMissingField      = errors.New("textcodec: missing field")
	ErrInvalidFieldValue = errors.New("textcodec: invalid field value")
)

// EncodeSnapshot renders a PriceLevelSnapshot as
// "PriceLevelSnapshot:price=...;visible_quantity=...;hidden_quantity=...;order_count=...".
// Orders are not serialized in this compact form.
func EncodeSnapshot(s pricelevel.PriceLevelSnapshot) string {
	return fmt.Sprintf(
		"PriceLevelSnapshot:price=%d;visible_quantity=%d;hidden_quantity=%d;order_count=%d",
		s.Price, s.VisibleQuantityTotal, s.HiddenQuantityTotal, s.OrderCount,
	)
}

// DecodeSnapshot parses the format EncodeSnapshot produces. The Orders
// field of the result is always empty: this compact form never round-trips
// individual resting orders, only the level's own aggregates.
func DecodeSnapshot(s string) (pricelevel.PriceLevelSnapshot, error) {
	typeName, fields, err := splitTypeAndFields(s)
	if err != nil {
		return pricelevel.PriceLevelSnapshot{}, err
	}
	if typeName != "PriceLevelSnapshot" {
		return pricelevel.PriceLevelSnapshot{}, ErrInvalidFormat
	}

	price, err := getUint64(fields, "price")
	if err != nil {
		return pricelevel.PriceLevelSnapshot{}, err
	}
	visible, err := getUint64(fields, "visible_quantity")
	if err != nil {
		return pricelevel.PriceLevelSnapshot{}, err
	}
	hidden, err := getUint64(fields, "hidden_quantity")
	if err != nil {
		return pricelevel.PriceLevelSnapshot{}, err
	}
	count, err := getUint64(fields, "order_count")
	if err != nil {
		return pricelevel.PriceLevelSnapshot{}, err
	}

	return pricelevel.PriceLevelSnapshot{
		Price:                price,
		VisibleQuantityTotal: visible,
		HiddenQuantityTotal:  hidden,
		OrderCount:           int(count),
	}, nil
}

// EncodeOrder renders the common fields of an Order that every variant
// shares, followed by visible_quantity and hidden_quantity for Iceberg and
// Reserve orders, or quantity for every other kind. Other variant-specific
// fields (trail amount, peg settings, replenishment settings) and the time
// in force are not encoded.
func EncodeOrder(o common.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order:id=%s;kind=%d;price=%d;side=%d;timestamp=%d", o.ID, o.Kind, o.Price, int(o.Side), o.Timestamp)

	switch o.Kind {
	case common.Iceberg, common.Reserve:
		fmt.Fprintf(&b, ";visible_quantity=%d;hidden_quantity=%d", o.VisibleQuantity, o.HiddenQuantity)
	default:
		fmt.Fprintf(&b, ";quantity=%d", o.Quantity)
	}
	return b.String()
}

// DecodeOrder parses a Standard order encoded by EncodeOrder. Iceberg and
// Reserve orders are intentionally not round-tripped by this minimal
// diagnostic decoder; callers needing those should read the fields off
// the snapshot directly rather than via text.
func DecodeOrder(s string) (common.Order, error) {
	typeName, fields, err := splitTypeAndFields(s)
	if err != nil {
		return common.Order{}, err
	}
	if typeName != "Order" {
		return common.Order{}, ErrInvalidFormat
	}

	idStr, ok := fields["id"]
	if !ok {
		return common.Order{}, fmt.Errorf("%w: id", ErrMissingField)
	}
	id, err := common.ParseOrderId(idStr)
	if err != nil {
		return common.Order{}, fmt.Errorf("%w: id=%s", ErrInvalidFieldValue, idStr)
	}

	price, err := getUint64(fields, "price")
	if err != nil {
		return common.Order{}, err
	}
	sideVal, err := getUint64(fields, "side")
	if err != nil {
		return common.Order{}, err
	}
	timestamp, err := getUint64(fields, "timestamp")
	if err != nil {
		return common.Order{}, err
	}
	quantity, err := getUint64(fields, "quantity")
	if err != nil {
		return common.Order{}, err
	}

	return common.NewStandardOrder(id, price, common.Side(sideVal), quantity, timestamp, common.NewGoodTillCancel()), nil
}

func splitTypeAndFields(s string) (string, map[string]string, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return "", nil, ErrInvalidFormat
	}

	fields := make(map[string]string)
	for _, pair := range strings.Split(parts[1], ";") {
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return "", nil, ErrInvalidFormat
		}
		fields[kv[0]] = kv[1]
	}
	return parts[0], fields, nil
}

func getUint64(fields map[string]string, name string) (uint64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%s", ErrInvalidFieldValue, name, raw)
	}
	return v, nil
}
