package textcodec

import (
	"testing"

	"levelcore/common"
	"levelcore/pricelevel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	snap := pricelevel.PriceLevelSnapshot{
		Price:                10_000,
		VisibleQuantityTotal: 250,
		HiddenQuantityTotal:  75,
		OrderCount:           3,
	}

	encoded := EncodeSnapshot(snap)
	assert.Equal(t, "PriceLevelSnapshot:price=10000;visible_quantity=250;hidden_quantity=75;order_count=3", encoded)

	decoded, err := DecodeSnapshot(encoded)
	require.NoError(t, err)
	assert.Equal(t, snap.Price, decoded.Price)
	assert.Equal(t, snap.VisibleQuantityTotal, decoded.VisibleQuantityTotal)
	assert.Equal(t, snap.HiddenQuantityTotal, decoded.HiddenQuantityTotal)
	assert.Equal(t, snap.OrderCount, decoded.OrderCount)
	assert.Empty(t, decoded.Orders)
}

func TestDecodeSnapshot_WrongTypeName(t *testing.T) {
	_, err := DecodeSnapshot("Order:price=1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodeSnapshot_MissingField(t *testing.T) {
	_, err := DecodeSnapshot("PriceLevelSnapshot:price=100")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDecodeSnapshot_InvalidFieldValue(t *testing.T) {
	_, err := DecodeSnapshot("PriceLevelSnapshot:price=abc;visible_quantity=1;hidden_quantity=1;order_count=1")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestDecodeSnapshot_MalformedNoColon(t *testing.T) {
	_, err := DecodeSnapshot("garbage")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOrder_RoundTrip_Standard(t *testing.T) {
	o := common.NewStandardOrder(common.NewOrderId(), 10_000, common.Sell, 42, 123, common.NewGoodTillCancel())
	encoded := EncodeOrder(o)

	decoded, err := DecodeOrder(encoded)
	require.NoError(t, err)
	assert.Equal(t, o.ID, decoded.ID)
	assert.Equal(t, o.Price, decoded.Price)
	assert.Equal(t, o.Side, decoded.Side)
	assert.Equal(t, o.Timestamp, decoded.Timestamp)
	assert.Equal(t, o.Quantity, decoded.Quantity)
}

func TestDecodeOrder_WrongTypeName(t *testing.T) {
	_, err := DecodeOrder("PriceLevelSnapshot:price=1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecodeOrder_MissingID(t *testing.T) {
	_, err := DecodeOrder("Order:price=1;side=0;timestamp=1;quantity=1")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDecodeOrder_InvalidID(t *testing.T) {
	_, err := DecodeOrder("Order:id=not-a-uuid;price=1;side=0;timestamp=1;quantity=1")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestEncodeOrder_IcebergUsesVisibleHiddenFields(t *testing.T) {
	o := common.NewIcebergOrder(common.NewOrderId(), 10_000, common.Buy, 50, 150, 1, common.NewGoodTillCancel())
	encoded := EncodeOrder(o)
	assert.Contains(t, encoded, "visible_quantity=50")
	assert.Contains(t, encoded, "hidden_quantity=150")
}
