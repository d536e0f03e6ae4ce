package common

import "errors"

// ErrSamePrice is returned by PriceLevel.UpdateOrder when an UpdatePrice
// targets the level's own price: an InvalidOperation per spec §7, since a
// same-price "move" is a no-op the caller should express as UpdateQuantity
// instead. UpdatePriceAndQuantity and Replace at the level's own price do
// not return it; they are applied as a quantity update.
var ErrSamePrice = errors.New("invalid operation: cannot update price to the same value")
