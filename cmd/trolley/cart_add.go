// Cart add command reserves stock into the cart.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	cartAddID  string
	cartAddQty int
)

var cartAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the cart",
	Long: `Add reserves the given quantity of a product and places it in the
cart. The available quantity in the catalog decreases by the same amount.

Example:
  trolley cart add --id p1 --qty 2`,
	RunE: runCartAdd,
}

func init() {
	cartAddCmd.Flags().StringVar(&cartAddID, "id", "", "product ID (required)")
	cartAddCmd.Flags().IntVar(&cartAddQty, "qty", 0, "quantity to add (required)")
	_ = cartAddCmd.MarkFlagRequired("id")
	_ = cartAddCmd.MarkFlagRequired("qty")
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	if cartAddQty <= 0 {
		return userErrorf("quantity must be positive")
	}

	led, backend, err := openLedger()
	if err != nil {
		return err
	}
	defer backend.Detach()

	ok, err := led.AddItem(cartAddID, cartAddQty)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	if !ok {
		return userErrorf("failed to add %q: check the product ID and available quantity", cartAddID)
	}

	fmt.Println("Item added to cart successfully!")
	return nil
}
