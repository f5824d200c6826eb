// Package sqlite implements the durable store for trolley. JSON data files
// are the source of truth; on Attach they are loaded into a throwaway SQLite
// database that serves catalog and cart queries, and every save rewrites the
// affected data file atomically.
package sqlite

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/trolley/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Data file names inside DataDir.
const (
	catalogFile     = "products.json"
	cartFile        = "cart.json"
	settlementsFile = "settlements.jsonl"
	dbFile          = "trolley.db"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the query engine
// and JSON files as the source of truth. The catalog and cart maps returned
// by Catalog and Cart are the live domain state; the ledger mutates them in
// place and calls SaveCart to make the mutation durable.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
	catalog  map[string]*types.Product
	cart     map[string]*types.CartItem
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, builds a fresh SQLite mirror, loads the data
// files into it, and hydrates the domain maps. Missing data files yield an
// empty catalog and cart (fresh-install state).
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// The database is a rebuildable mirror; start from a fresh schema.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	if err := loadDataFiles(db, dataDir); err != nil {
		db.Close()
		return fmt.Errorf("load data files: %w", err)
	}

	catalog, err := hydrateCatalog(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("hydrate catalog: %w", err)
	}
	cart, err := hydrateCart(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("hydrate cart: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir
	b.catalog = catalog
	b.cart = cart
	b.attached = true
	return nil
}

// Detach releases the SQLite connection and drops the domain maps. After
// Detach, operations return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	b.catalog = nil
	b.cart = nil
	return nil
}

// Catalog returns the live product map keyed by product ID.
func (b *Backend) Catalog() (map[string]*types.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.catalog, nil
}

// Cart returns the live cart line map keyed by product ID.
func (b *Backend) Cart() (map[string]*types.CartItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return b.cart, nil
}

// SaveCart refreshes the SQLite mirror from the domain maps and atomically
// rewrites cart.json. Catalog stock counters are mirrored for queries but
// products.json is not rewritten; the catalog file changes only on reseed.
func (b *Backend) SaveCart() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if err := b.refreshMirror(); err != nil {
		return fmt.Errorf("refresh mirror: %w", err)
	}
	return b.persistCart()
}

// refreshMirror rewrites the cart_items rows and product stock counters in
// the SQLite mirror from the domain maps.
func (b *Backend) refreshMirror() error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning mirror transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cart_items"); err != nil {
		return fmt.Errorf("clearing cart mirror: %w", err)
	}
	for _, item := range b.cart {
		if _, err := tx.Exec(
			"INSERT INTO cart_items (product_id, quantity) VALUES (?, ?)",
			item.ProductID, item.Quantity,
		); err != nil {
			return fmt.Errorf("mirroring cart item %s: %w", item.ProductID, err)
		}
	}
	for _, p := range b.catalog {
		if _, err := tx.Exec(
			"UPDATE products SET quantity_available = ? WHERE product_id = ?",
			p.QuantityAvailable, p.ProductID,
		); err != nil {
			return fmt.Errorf("mirroring stock for %s: %w", p.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing mirror transaction: %w", err)
	}
	return nil
}

// persistCart dumps the cart_items mirror to cart.json atomically.
func (b *Backend) persistCart() error {
	rows, err := b.db.Query("SELECT product_id, quantity FROM cart_items ORDER BY product_id")
	if err != nil {
		return fmt.Errorf("querying cart for persist: %w", err)
	}
	defer rows.Close()

	records := make(map[string]json.RawMessage)
	for rows.Next() {
		var rec cartItemJSON
		if err := rows.Scan(&rec.ProductID, &rec.Quantity); err != nil {
			return fmt.Errorf("scanning cart item for persist: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling cart item %s: %w", rec.ProductID, err)
		}
		records[rec.ProductID] = data
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading cart for persist: %w", err)
	}

	return writeJSONMap(filepath.Join(b.dataDir, cartFile), records)
}

// ReplaceCatalog replaces the whole catalog with the given products, rewrites
// products.json atomically, and rebuilds the mirror rows. The cart file is
// not touched: entries referencing products absent from the new catalog are
// dropped silently on the next Attach.
func (b *Backend) ReplaceCatalog(products []*types.Product) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning catalog transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cart_items"); err != nil {
		return fmt.Errorf("clearing cart mirror: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM products"); err != nil {
		return fmt.Errorf("clearing product mirror: %w", err)
	}
	for _, p := range products {
		if err := insertProduct(tx, p); err != nil {
			return fmt.Errorf("inserting product %s: %w", p.ProductID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog transaction: %w", err)
	}

	if err := b.persistCatalog(); err != nil {
		return err
	}

	catalog := make(map[string]*types.Product, len(products))
	for _, p := range products {
		catalog[p.ProductID] = p
	}
	b.catalog = catalog
	return nil
}

// persistCatalog dumps the products mirror to products.json atomically.
func (b *Backend) persistCatalog() error {
	rows, err := b.db.Query("SELECT " + productColumns + " FROM products ORDER BY product_id")
	if err != nil {
		return fmt.Errorf("querying products for persist: %w", err)
	}
	defer rows.Close()

	records := make(map[string]json.RawMessage)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return fmt.Errorf("scanning product for persist: %w", err)
		}
		data, err := json.Marshal(encodeProduct(p))
		if err != nil {
			return fmt.Errorf("marshaling product %s: %w", p.ProductID, err)
		}
		records[p.ProductID] = data
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading products for persist: %w", err)
	}

	return writeJSONMap(filepath.Join(b.dataDir, catalogFile), records)
}

// ListProducts returns the catalog ordered by product ID, read from the
// SQLite mirror.
func (b *Backend) ListProducts() ([]*types.Product, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query("SELECT " + productColumns + " FROM products ORDER BY product_id")
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []*types.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ListCartItems returns the cart lines ordered by product ID, read from the
// SQLite mirror.
func (b *Backend) ListCartItems() ([]*types.CartItem, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query("SELECT product_id, quantity FROM cart_items ORDER BY product_id")
	if err != nil {
		return nil, fmt.Errorf("querying cart items: %w", err)
	}
	defer rows.Close()

	var items []*types.CartItem
	for rows.Next() {
		var item types.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// RecordSettlement appends a settlement record with a generated UUID v7 to
// settlements.jsonl and returns the identifier. The settlement log is an
// audit trail of checkouts, not an order system.
func (b *Backend) RecordSettlement(total decimal.Decimal) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	id := generateUUID()
	rec := settlementJSON{
		SettlementID: id,
		Total:        json.Number(total.String()),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshaling settlement: %w", err)
	}

	path := filepath.Join(b.dataDir, settlementsFile)
	records, err := readJSONL(path)
	if err != nil {
		return "", err
	}
	records = append(records, data)
	if err := writeJSONL(path, records); err != nil {
		return "", err
	}
	return id, nil
}

// generateUUID generates a new UUID v7 for settlement IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
