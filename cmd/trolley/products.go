// Products command lists the catalog.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/trolley/pkg/types"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product catalog",
	Long: `Products lists every catalog entry with its price, available
quantity, and variant details.

Example:
  trolley products
  trolley products --json`,
	RunE: runProducts,
}

// productLine is the display record for one catalog entry.
type productLine struct {
	ProductID         string `json:"product_id"`
	Type              string `json:"type"`
	Name              string `json:"name"`
	Price             string `json:"price"`
	QuantityAvailable int    `json:"quantity_available"`
	Weight            string `json:"weight,omitempty"`
	DownloadLink      string `json:"download_link,omitempty"`
}

func runProducts(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	products, err := backend.ListProducts()
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	if flagJSON {
		lines := make([]productLine, 0, len(products))
		for _, p := range products {
			line := productLine{
				ProductID:         p.ProductID,
				Type:              p.Kind,
				Name:              p.Name,
				Price:             p.Price.String(),
				QuantityAvailable: p.QuantityAvailable,
			}
			switch p.Kind {
			case types.KindPhysical:
				line.Weight = p.Weight.String()
			case types.KindDigital:
				line.DownloadLink = p.DownloadLink
			}
			lines = append(lines, line)
		}
		output, err := json.MarshalIndent(lines, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal products: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if len(products) == 0 {
		fmt.Println("No products available.")
		return nil
	}

	fmt.Println("=== Available Products ===")
	for _, p := range products {
		fmt.Println()
		fmt.Println(p.Details())
	}
	return nil
}
