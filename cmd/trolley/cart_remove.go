// Cart remove command releases a cart line back to the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cartRemoveID string

var cartRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a product from the cart",
	Long: `Remove deletes a cart item and restores its full reserved quantity
to the catalog.

Example:
  trolley cart remove --id p1`,
	RunE: runCartRemove,
}

func init() {
	cartRemoveCmd.Flags().StringVar(&cartRemoveID, "id", "", "product ID (required)")
	_ = cartRemoveCmd.MarkFlagRequired("id")
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	led, backend, err := openLedger()
	if err != nil {
		return err
	}
	defer backend.Detach()

	ok, err := led.RemoveItem(cartRemoveID)
	if err != nil {
		return fmt.Errorf("remove item: %w", err)
	}
	if !ok {
		return userErrorf("product %q not found in cart", cartRemoveID)
	}

	fmt.Println("Item removed successfully!")
	return nil
}
