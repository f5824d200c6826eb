package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(quantity int) *Product {
	return &Product{
		ProductID:         "p1",
		Kind:              KindGeneric,
		Name:              "USB Flash Drive 64GB",
		Price:             decimal.RequireFromString("12.99"),
		QuantityAvailable: quantity,
	}
}

func TestProductDecreaseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		available int
		amount    int
		wantOK    bool
		wantAfter int
	}{
		{
			name:      "reserves within stock",
			available: 5,
			amount:    3,
			wantOK:    true,
			wantAfter: 2,
		},
		{
			name:      "reserves exactly all stock",
			available: 5,
			amount:    5,
			wantOK:    true,
			wantAfter: 0,
		},
		{
			name:      "rejects amount above stock",
			available: 5,
			amount:    6,
			wantOK:    false,
			wantAfter: 5,
		},
		{
			name:      "rejects zero amount",
			available: 5,
			amount:    0,
			wantOK:    false,
			wantAfter: 5,
		},
		{
			name:      "rejects negative amount",
			available: 5,
			amount:    -1,
			wantOK:    false,
			wantAfter: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProduct(tt.available)

			ok := p.DecreaseQuantity(tt.amount)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAfter, p.QuantityAvailable,
				"no partial application on failure")
		})
	}
}

func TestProductIncreaseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		amount    int
		wantErr   error
		wantAfter int
	}{
		{
			name:      "releases positive amount",
			amount:    4,
			wantAfter: 9,
		},
		{
			name:      "rejects zero amount",
			amount:    0,
			wantErr:   ErrAmountNotPositive,
			wantAfter: 5,
		},
		{
			name:      "rejects negative amount",
			amount:    -2,
			wantErr:   ErrAmountNotPositive,
			wantAfter: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProduct(5)

			err := p.IncreaseQuantity(tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAfter, p.QuantityAvailable)
		})
	}
}

func TestProductSetQuantityAvailable(t *testing.T) {
	p := newTestProduct(5)

	require.NoError(t, p.SetQuantityAvailable(0))
	assert.Equal(t, 0, p.QuantityAvailable)

	require.NoError(t, p.SetQuantityAvailable(12))
	assert.Equal(t, 12, p.QuantityAvailable)

	err := p.SetQuantityAvailable(-1)
	assert.ErrorIs(t, err, ErrQuantityNegative)
	assert.Equal(t, 12, p.QuantityAvailable, "value must not change on error")
}

func TestProductSubtotal(t *testing.T) {
	p := newTestProduct(100)

	got := p.Subtotal(3)
	assert.True(t, decimal.RequireFromString("38.97").Equal(got),
		"want 38.97, got %s", got)

	assert.True(t, p.Subtotal(0).IsZero())
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindGeneric))
	assert.True(t, ValidKind(KindPhysical))
	assert.True(t, ValidKind(KindDigital))
	assert.False(t, ValidKind(""))
	assert.False(t, ValidKind("subscription"))
}

func TestProductDetails(t *testing.T) {
	t.Run("generic has no variant line", func(t *testing.T) {
		p := newTestProduct(7)
		details := p.Details()
		assert.Contains(t, details, "Product ID: p1")
		assert.Contains(t, details, "Price: $12.99")
		assert.Contains(t, details, "Available Quantity: 7")
		assert.NotContains(t, details, "Weight")
		assert.NotContains(t, details, "Download Link")
	})

	t.Run("physical appends weight", func(t *testing.T) {
		p := &Product{
			ProductID:         "p2",
			Kind:              KindPhysical,
			Name:              "Bluetooth Keyboard",
			Price:             decimal.RequireFromString("45.50"),
			QuantityAvailable: 30,
			Weight:            decimal.RequireFromString("0.5"),
		}
		assert.Contains(t, p.Details(), "Weight: 0.5 kg")
		assert.Contains(t, p.String(), "(Physical, 0.5kg)")
	})

	t.Run("digital appends download link", func(t *testing.T) {
		p := &Product{
			ProductID:         "d1",
			Kind:              KindDigital,
			Name:              "E-book: Go Basics",
			Price:             decimal.RequireFromString("19.99"),
			QuantityAvailable: 1000,
			DownloadLink:      "https://example.com/download/d1",
		}
		assert.Contains(t, p.Details(), "Download Link: https://example.com/download/d1")
		assert.Contains(t, p.String(), "(Digital)")
	})
}
