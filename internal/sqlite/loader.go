// This file implements data-file loading for Attach: products.json and
// cart.json are read into the SQLite mirror, then the domain maps are
// hydrated from the mirror.

package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/dukaforge/trolley/pkg/types"
)

// loadDataFiles reads the catalog and cart files from dataDir and inserts
// their records into the SQLite mirror. Loading is transactional: all
// records land or the database stays empty. Malformed catalog entries are
// skipped. Cart entries whose product is absent from the catalog are dropped
// silently as stale data from a previous catalog; persisted quantities are
// otherwise trusted without re-verification against quantity_available.
func loadDataFiles(db *sql.DB, dataDir string) error {
	catalogRecords, err := readJSONMap(filepath.Join(dataDir, catalogFile))
	if err != nil {
		return err
	}
	cartRecords, err := readJSONMap(filepath.Join(dataDir, cartFile))
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	inCatalog := make(map[string]bool, len(catalogRecords))
	for key, raw := range catalogRecords {
		var rec productJSON
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		product, err := decodeProduct(key, rec)
		if err != nil {
			continue
		}
		if err := insertProduct(tx, product); err != nil {
			return fmt.Errorf("loading product %s: %w", product.ProductID, err)
		}
		inCatalog[product.ProductID] = true
	}

	for key, raw := range cartRecords {
		var rec cartItemJSON
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if rec.ProductID == "" {
			rec.ProductID = key
		}
		if !inCatalog[rec.ProductID] {
			continue
		}
		// Quantity zero means removal; such lines never hydrate.
		if rec.Quantity <= 0 {
			continue
		}
		if _, err := tx.Exec(
			"INSERT INTO cart_items (product_id, quantity) VALUES (?, ?)",
			rec.ProductID, rec.Quantity,
		); err != nil {
			return fmt.Errorf("loading cart item %s: %w", rec.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertProduct inserts a product row into the mirror.
func insertProduct(tx *sql.Tx, p *types.Product) error {
	var weight, downloadLink any
	switch p.Kind {
	case types.KindPhysical:
		weight = p.Weight.String()
	case types.KindDigital:
		downloadLink = p.DownloadLink
	}
	_, err := tx.Exec(
		"INSERT INTO products (product_id, kind, name, price, quantity_available, weight, download_link) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.ProductID, p.Kind, p.Name, p.Price.String(), p.QuantityAvailable, weight, downloadLink,
	)
	return err
}

// productColumns is the select list matching scanProduct.
const productColumns = "product_id, kind, name, price, quantity_available, weight, download_link"

// scanProduct hydrates one product row into a domain product.
func scanProduct(rows *sql.Rows) (*types.Product, error) {
	var (
		p         types.Product
		priceText string
		weight    sql.NullString
		download  sql.NullString
	)
	if err := rows.Scan(&p.ProductID, &p.Kind, &p.Name, &priceText,
		&p.QuantityAvailable, &weight, &download); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceText)
	if err != nil {
		return nil, fmt.Errorf("product %s: parsing price: %w", p.ProductID, err)
	}
	p.Price = price

	if weight.Valid {
		w, err := decimal.NewFromString(weight.String)
		if err != nil {
			return nil, fmt.Errorf("product %s: parsing weight: %w", p.ProductID, err)
		}
		p.Weight = w
	}
	if download.Valid {
		p.DownloadLink = download.String
	}
	return &p, nil
}

// hydrateCatalog reads all product rows into the domain catalog map.
func hydrateCatalog(db *sql.DB) (map[string]*types.Product, error) {
	rows, err := db.Query("SELECT " + productColumns + " FROM products")
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	catalog := make(map[string]*types.Product)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		catalog[p.ProductID] = p
	}
	return catalog, rows.Err()
}

// hydrateCart reads all cart rows into the domain cart map.
func hydrateCart(db *sql.DB) (map[string]*types.CartItem, error) {
	rows, err := db.Query("SELECT product_id, quantity FROM cart_items")
	if err != nil {
		return nil, fmt.Errorf("querying cart items: %w", err)
	}
	defer rows.Close()

	cart := make(map[string]*types.CartItem)
	for rows.Next() {
		var item types.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		cart[item.ProductID] = &item
	}
	return cart, rows.Err()
}
