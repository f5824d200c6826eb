package types

// CartItem is a cart line: a product reference by ID plus the reserved
// quantity. The catalog owns the Product; the cart holds only the ID, so
// quantity operations resolve the product by map lookup at call time.
type CartItem struct {
	ProductID string // Catalog key of the reserved product.
	Quantity  int    // Reserved units, positive while the item exists.
}

// SetQuantity sets the reserved quantity. Returns ErrQuantityNegative when
// value is negative. A quantity of zero means the item is to be removed from
// the cart; zero-quantity items never persist.
func (ci *CartItem) SetQuantity(value int) error {
	if value < 0 {
		return ErrQuantityNegative
	}
	ci.Quantity = value
	return nil
}
