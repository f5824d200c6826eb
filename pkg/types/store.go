package types

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Store is the persistence surface the inventory ledger coordinates over.
// A backend hydrates the catalog and cart maps on attach; the ledger mutates
// the entities in place and persists the cart after every successful
// mutation. Catalog stock counters are written back only when the catalog is
// reseeded, never by cart mutations.
type Store interface {
	// Catalog returns the product map keyed by product ID.
	// Returns ErrStoreDetached when the backend is not attached.
	Catalog() (map[string]*Product, error)

	// Cart returns the cart line map keyed by product ID.
	// Returns ErrStoreDetached when the backend is not attached.
	Cart() (map[string]*CartItem, error)

	// SaveCart durably persists the current cart state. The write is
	// atomic: a crash mid-write leaves the previous cart file intact.
	SaveCart() error

	// RecordSettlement appends a checkout settlement record to the audit
	// log and returns its generated identifier.
	RecordSettlement(total decimal.Decimal) (string, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
