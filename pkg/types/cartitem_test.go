package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartItemSetQuantity(t *testing.T) {
	item := &CartItem{ProductID: "p1", Quantity: 3}

	require.NoError(t, item.SetQuantity(5))
	assert.Equal(t, 5, item.Quantity)

	require.NoError(t, item.SetQuantity(0))
	assert.Equal(t, 0, item.Quantity)

	err := item.SetQuantity(-1)
	assert.ErrorIs(t, err, ErrQuantityNegative)
	assert.Equal(t, 0, item.Quantity, "quantity must not change on error")
}
