package types

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product kinds. The kind tag is carried through serialization; records with
// an absent or unrecognized tag decode as KindGeneric.
const (
	KindGeneric  = "product"
	KindPhysical = "physical"
	KindDigital  = "digital"
)

// validKinds is the set of recognized product kind values.
var validKinds = map[string]bool{
	KindGeneric:  true,
	KindPhysical: true,
	KindDigital:  true,
}

// ValidKind reports whether kind is a recognized product kind.
func ValidKind(kind string) bool {
	return validKinds[kind]
}

// Quantity guard errors.
var (
	ErrQuantityNegative  = errors.New("quantity cannot be negative")
	ErrAmountNotPositive = errors.New("amount must be positive")
)

// Product represents a sellable catalog record. Kind selects the variant:
// physical products carry Weight, digital products carry DownloadLink.
// ProductID, Name, Price, and the variant fields are immutable after
// creation. QuantityAvailable counts the units not currently reserved by the
// cart and is mutated only through the quantity guards below.
type Product struct {
	ProductID         string          // Unique catalog key, immutable.
	Kind              string          // One of the Kind constants.
	Name              string          // Display name.
	Price             decimal.Decimal // Non-negative unit price.
	QuantityAvailable int             // Unreserved units, never negative.
	Weight            decimal.Decimal // Physical variant only, kilograms.
	DownloadLink      string          // Digital variant only.
}

// DecreaseQuantity reserves amount units. Returns false when amount is not
// positive or exceeds QuantityAvailable; the count is never partially
// applied.
func (p *Product) DecreaseQuantity(amount int) bool {
	if amount <= 0 || amount > p.QuantityAvailable {
		return false
	}
	p.QuantityAvailable -= amount
	return true
}

// IncreaseQuantity releases amount units back to the catalog.
// Returns ErrAmountNotPositive when amount is not positive.
func (p *Product) IncreaseQuantity(amount int) error {
	if amount <= 0 {
		return ErrAmountNotPositive
	}
	p.QuantityAvailable += amount
	return nil
}

// SetQuantityAvailable sets the unreserved count.
// Returns ErrQuantityNegative when value is negative.
func (p *Product) SetQuantityAvailable(value int) error {
	if value < 0 {
		return ErrQuantityNegative
	}
	p.QuantityAvailable = value
	return nil
}

// Subtotal returns Price multiplied by quantity.
func (p *Product) Subtotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Details returns the multi-line display form, with the variant field
// appended for physical and digital products.
func (p *Product) Details() string {
	s := fmt.Sprintf("Product ID: %s\nName: %s\nPrice: $%s\nAvailable Quantity: %d",
		p.ProductID, p.Name, p.Price.StringFixed(2), p.QuantityAvailable)
	switch p.Kind {
	case KindPhysical:
		s += fmt.Sprintf("\nWeight: %s kg", p.Weight.String())
	case KindDigital:
		s += fmt.Sprintf("\nDownload Link: %s", p.DownloadLink)
	}
	return s
}

// String returns the single-line display form.
func (p *Product) String() string {
	s := fmt.Sprintf("%s (ID: %s) - $%s", p.Name, p.ProductID, p.Price.StringFixed(2))
	switch p.Kind {
	case KindPhysical:
		s += fmt.Sprintf(" (Physical, %skg)", p.Weight.String())
	case KindDigital:
		s += " (Digital)"
	}
	return s
}
