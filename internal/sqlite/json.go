// JSON record structures for the trolley backend.
// These structures define the record format of the data files; the field
// names and shapes are the interchange contract other tooling may depend on.

package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dukaforge/trolley/pkg/types"
)

// productJSON represents a catalog record in products.json. The type tag
// selects the product variant; weight and download_link are present only for
// the physical and digital variants.
type productJSON struct {
	Type              string       `json:"type"`
	ProductID         string       `json:"product_id"`
	Name              string       `json:"name"`
	Price             json.Number  `json:"price"`
	QuantityAvailable int          `json:"quantity_available"`
	Weight            *json.Number `json:"weight,omitempty"`
	DownloadLink      *string      `json:"download_link,omitempty"`
}

// cartItemJSON represents a cart line in cart.json.
type cartItemJSON struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// settlementJSON represents a checkout settlement record in settlements.jsonl.
type settlementJSON struct {
	SettlementID string      `json:"settlement_id"`
	Total        json.Number `json:"total"`
	CreatedAt    string      `json:"created_at"`
}

// encodeProduct converts a domain product to its catalog record form.
func encodeProduct(p *types.Product) productJSON {
	rec := productJSON{
		Type:              p.Kind,
		ProductID:         p.ProductID,
		Name:              p.Name,
		Price:             json.Number(p.Price.String()),
		QuantityAvailable: p.QuantityAvailable,
	}
	switch p.Kind {
	case types.KindPhysical:
		w := json.Number(p.Weight.String())
		rec.Weight = &w
	case types.KindDigital:
		dl := p.DownloadLink
		rec.DownloadLink = &dl
	}
	return rec
}

// decodeProduct converts a catalog record to a domain product. The key is
// the catalog map key, used when the record omits product_id. An absent or
// unrecognized type tag decodes as the generic variant.
func decodeProduct(key string, rec productJSON) (*types.Product, error) {
	kind := rec.Type
	if !types.ValidKind(kind) {
		kind = types.KindGeneric
	}

	productID := rec.ProductID
	if productID == "" {
		productID = key
	}
	if productID == "" {
		return nil, fmt.Errorf("catalog record has no product ID")
	}
	if rec.QuantityAvailable < 0 {
		return nil, fmt.Errorf("product %s: %w", productID, types.ErrQuantityNegative)
	}

	price := decimal.Zero
	if rec.Price != "" {
		var err error
		price, err = decimal.NewFromString(rec.Price.String())
		if err != nil {
			return nil, fmt.Errorf("product %s: parsing price: %w", productID, err)
		}
	}

	p := &types.Product{
		ProductID:         productID,
		Kind:              kind,
		Name:              rec.Name,
		Price:             price,
		QuantityAvailable: rec.QuantityAvailable,
	}

	if kind == types.KindPhysical && rec.Weight != nil {
		w, err := decimal.NewFromString(rec.Weight.String())
		if err != nil {
			return nil, fmt.Errorf("product %s: parsing weight: %w", productID, err)
		}
		p.Weight = w
	}
	if kind == types.KindDigital && rec.DownloadLink != nil {
		p.DownloadLink = *rec.DownloadLink
	}

	return p, nil
}
