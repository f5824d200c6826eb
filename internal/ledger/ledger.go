// Package ledger implements the inventory coordinator: the single authority
// that mutates catalog availability and cart quantities together, enforcing
// the reservation invariant (quantity_available plus the cart's reserved
// quantity equals the stock recorded at load time) and persisting the cart
// after every successful mutation.
//
// Every mutating operation returns (ok, err). Business-rule failures
// (unknown product, insufficient stock, item not in cart, non-positive
// quantity) are signaled with ok == false and a nil error; they are expected
// conditions the caller translates into user-facing messages. A non-nil
// error means persistence failed; the in-memory mutation has been rolled
// back, so memory and disk stay consistent.
package ledger

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dukaforge/trolley/pkg/types"
)

// Ledger coordinates the catalog and cart stores. A single mutex serializes
// the mutating operations: each one is a read-modify-write across two
// related stores, and the pair must be observed atomically.
type Ledger struct {
	mu    sync.Mutex
	store types.Store
}

// New creates a Ledger over an attached store.
func New(store types.Store) *Ledger {
	return &Ledger{store: store}
}

// AddItem reserves quantity units of the product and adds them to the cart.
// Returns ok == false when the product is not in the catalog, or when the
// quantity is not positive or exceeds the available stock. On success the
// cart line is created or incremented and the cart is persisted.
func (l *Ledger) AddItem(productID string, quantity int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	catalog, cart, err := l.state()
	if err != nil {
		return false, err
	}

	product, ok := catalog[productID]
	if !ok {
		return false, nil
	}
	if !product.DecreaseQuantity(quantity) {
		return false, nil
	}

	item, existed := cart[productID]
	if existed {
		item.Quantity += quantity
	} else {
		item = &types.CartItem{ProductID: productID, Quantity: quantity}
		cart[productID] = item
	}

	if err := l.store.SaveCart(); err != nil {
		if existed {
			item.Quantity -= quantity
		} else {
			delete(cart, productID)
		}
		product.QuantityAvailable += quantity
		return false, fmt.Errorf("persist cart: %w", err)
	}
	return true, nil
}

// RemoveItem deletes the cart line for the product and restores its full
// reserved quantity to the catalog. Returns ok == false when the product is
// not in the cart.
func (l *Ledger) RemoveItem(productID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	catalog, cart, err := l.state()
	if err != nil {
		return false, err
	}

	item, ok := cart[productID]
	if !ok {
		return false, nil
	}

	released := item.Quantity
	if product, ok := catalog[productID]; ok {
		if err := product.IncreaseQuantity(released); err != nil {
			return false, err
		}
	}
	delete(cart, productID)

	if err := l.store.SaveCart(); err != nil {
		cart[productID] = item
		if product, ok := catalog[productID]; ok {
			product.QuantityAvailable -= released
		}
		return false, fmt.Errorf("persist cart: %w", err)
	}
	return true, nil
}

// UpdateQuantity sets the cart line for the product to newQuantity. A
// positive difference reserves more stock and aborts with ok == false when
// the stock is insufficient; a negative difference releases the surplus back
// to the catalog. Setting the quantity to zero removes the line entirely.
// Returns ok == false when the product is not in the cart or newQuantity is
// negative.
func (l *Ledger) UpdateQuantity(productID string, newQuantity int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	catalog, cart, err := l.state()
	if err != nil {
		return false, err
	}

	item, ok := cart[productID]
	if !ok || newQuantity < 0 {
		return false, nil
	}
	product := catalog[productID]

	diff := newQuantity - item.Quantity
	if diff > 0 {
		if product == nil || !product.DecreaseQuantity(diff) {
			return false, nil
		}
	} else if diff < 0 {
		if product != nil {
			if err := product.IncreaseQuantity(-diff); err != nil {
				return false, err
			}
		}
	}

	prev := item.Quantity
	if err := item.SetQuantity(newQuantity); err != nil {
		// Unreachable after the negative check above; restore the stock
		// movement all the same.
		if product != nil {
			product.QuantityAvailable += diff
		}
		return false, err
	}
	if newQuantity == 0 {
		delete(cart, productID)
	}

	if err := l.store.SaveCart(); err != nil {
		item.Quantity = prev
		if newQuantity == 0 {
			cart[productID] = item
		}
		if product != nil {
			product.QuantityAvailable += diff
		}
		return false, fmt.Errorf("persist cart: %w", err)
	}
	return true, nil
}

// Total returns the sum of price times quantity over all cart lines.
// Pure read: no state change, no persistence.
func (l *Ledger) Total() (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalLocked()
}

// totalLocked computes the cart total. The caller must hold l.mu.
func (l *Ledger) totalLocked() (decimal.Decimal, error) {
	catalog, cart, err := l.state()
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, item := range cart {
		if product, ok := catalog[item.ProductID]; ok {
			total = total.Add(product.Subtotal(item.Quantity))
		}
	}
	return total, nil
}

// Checkout settles the cart: when the total is positive it clears every cart
// line, persists the empty cart, appends a settlement record to the audit
// log, and returns the pre-clear total. Reserved quantities are treated as
// sold and are not restored to the catalog. An empty cart is a no-op
// returning zero.
func (l *Ledger) Checkout() (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total, err := l.totalLocked()
	if err != nil {
		return decimal.Zero, err
	}
	if !total.IsPositive() {
		return decimal.Zero, nil
	}

	_, cart, err := l.state()
	if err != nil {
		return decimal.Zero, err
	}

	cleared := make(map[string]*types.CartItem, len(cart))
	for id, item := range cart {
		cleared[id] = item
		delete(cart, id)
	}

	if err := l.store.SaveCart(); err != nil {
		for id, item := range cleared {
			cart[id] = item
		}
		return decimal.Zero, fmt.Errorf("persist cart: %w", err)
	}

	if _, err := l.store.RecordSettlement(total); err != nil {
		// The cart is already durably cleared; the settlement is audit
		// data, so surface the failure alongside the settled total.
		return total, fmt.Errorf("record settlement: %w", err)
	}
	return total, nil
}

// state fetches the live catalog and cart maps from the store.
func (l *Ledger) state() (map[string]*types.Product, map[string]*types.CartItem, error) {
	catalog, err := l.store.Catalog()
	if err != nil {
		return nil, nil, err
	}
	cart, err := l.store.Cart()
	if err != nil {
		return nil, nil, err
	}
	return catalog, cart, nil
}
