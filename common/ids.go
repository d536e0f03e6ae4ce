package common

import "github.com/google/uuid"

// OrderId is a 128-bit identifier unique across the trading session.
type OrderId = uuid.UUID

// NewOrderId mints a fresh order identifier.
func NewOrderId() OrderId {
	return uuid.New()
}

// ParseOrderId parses the canonical string form of an OrderId.
func ParseOrderId(s string) (OrderId, error) {
	return uuid.Parse(s)
}
