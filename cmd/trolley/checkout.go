// Checkout command settles the cart.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Settle the cart",
	Long: `Checkout clears the cart and reports the settled total. Reserved
quantities are treated as sold and are not restored to the catalog. A
settlement record is appended to the audit log. An empty cart is a no-op.`,
	RunE: runCheckout,
}

func runCheckout(cmd *cobra.Command, args []string) error {
	led, backend, err := openLedger()
	if err != nil {
		return err
	}
	defer backend.Detach()

	total, err := led.Checkout()
	if err != nil {
		return fmt.Errorf("checkout: %w", err)
	}

	if total.IsZero() {
		fmt.Println("Your cart is empty. Nothing to check out.")
		return nil
	}

	fmt.Println("=== Checkout ===")
	fmt.Printf("Total amount: $%s\n", total.StringFixed(2))
	fmt.Println("Thank you for your purchase!")
	return nil
}
