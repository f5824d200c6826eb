// Cart update command changes a cart line's reserved quantity.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cartUpdateID  string
	cartUpdateQty int
)

var cartUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the quantity of a cart item",
	Long: `Update sets a cart item's quantity. Raising it reserves more stock;
lowering it releases the surplus back to the catalog. A quantity of zero
removes the item from the cart.

Example:
  trolley cart update --id p1 --qty 4
  trolley cart update --id p1 --qty 0`,
	RunE: runCartUpdate,
}

func init() {
	cartUpdateCmd.Flags().StringVar(&cartUpdateID, "id", "", "product ID (required)")
	cartUpdateCmd.Flags().IntVar(&cartUpdateQty, "qty", -1, "new quantity (required)")
	_ = cartUpdateCmd.MarkFlagRequired("id")
	_ = cartUpdateCmd.MarkFlagRequired("qty")
}

func runCartUpdate(cmd *cobra.Command, args []string) error {
	if cartUpdateQty < 0 {
		return userErrorf("quantity cannot be negative")
	}

	led, backend, err := openLedger()
	if err != nil {
		return err
	}
	defer backend.Detach()

	ok, err := led.UpdateQuantity(cartUpdateID, cartUpdateQty)
	if err != nil {
		return fmt.Errorf("update quantity: %w", err)
	}
	if !ok {
		return userErrorf("failed to update %q: check the product ID and available quantity", cartUpdateID)
	}

	fmt.Println("Quantity updated successfully!")
	return nil
}
