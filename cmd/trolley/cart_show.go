// Cart show command displays the cart lines and grand total.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the cart contents",
	Long: `Show lists every cart line with its quantity, unit price, and
subtotal, followed by the grand total.

Example:
  trolley cart show
  trolley cart show --json`,
	RunE: runCartShow,
}

// cartLine is the display record for one cart entry.
type cartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
}

func runCartShow(cmd *cobra.Command, args []string) error {
	led, backend, err := openLedger()
	if err != nil {
		return err
	}
	defer backend.Detach()

	items, err := backend.ListCartItems()
	if err != nil {
		return fmt.Errorf("list cart items: %w", err)
	}
	catalog, err := backend.Catalog()
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	total, err := led.Total()
	if err != nil {
		return fmt.Errorf("compute total: %w", err)
	}

	var lines []cartLine
	for _, item := range items {
		product, ok := catalog[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, cartLine{
			ProductID: item.ProductID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price.StringFixed(2),
			Subtotal:  product.Subtotal(item.Quantity).StringFixed(2),
		})
	}

	if flagJSON {
		out := struct {
			Items []cartLine `json:"items"`
			Total string     `json:"total"`
		}{Items: lines, Total: total.StringFixed(2)}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal cart: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(lines) == 0 {
		fmt.Println("Your shopping cart is empty.")
		return nil
	}

	fmt.Println("=== Shopping Cart ===")
	for _, l := range lines {
		fmt.Printf("Item: %s, Quantity: %d, Price: $%s, Subtotal: $%s\n",
			l.Name, l.Quantity, l.Price, l.Subtotal)
	}
	fmt.Printf("\nGrand Total: $%s\n", total.StringFixed(2))
	return nil
}
