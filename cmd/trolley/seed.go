// Seed command writes the sample catalog.
package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dukaforge/trolley/pkg/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample product catalog",
	Long: `Seed replaces the product catalog with the built-in sample set:
two physical products, two digital products, and one generic product.

Cart entries referencing products absent from the new catalog are dropped
on the next load.`,
	RunE: runSeed,
}

// sampleCatalog returns the built-in sample products.
func sampleCatalog() []*types.Product {
	return []*types.Product{
		{
			ProductID:         "p1",
			Kind:              types.KindPhysical,
			Name:              "Wireless Mouse",
			Price:             decimal.RequireFromString("25.99"),
			QuantityAvailable: 50,
			Weight:            decimal.RequireFromString("0.2"),
		},
		{
			ProductID:         "p2",
			Kind:              types.KindPhysical,
			Name:              "Bluetooth Keyboard",
			Price:             decimal.RequireFromString("45.50"),
			QuantityAvailable: 30,
			Weight:            decimal.RequireFromString("0.5"),
		},
		{
			ProductID:         "d1",
			Kind:              types.KindDigital,
			Name:              "E-book: Go Basics",
			Price:             decimal.RequireFromString("19.99"),
			QuantityAvailable: 1000,
			DownloadLink:      "https://example.com/download/d1",
		},
		{
			ProductID:         "d2",
			Kind:              types.KindDigital,
			Name:              "Photo Editing Software",
			Price:             decimal.RequireFromString("59.99"),
			QuantityAvailable: 500,
			DownloadLink:      "https://example.com/download/d2",
		},
		{
			ProductID:         "p3",
			Kind:              types.KindGeneric,
			Name:              "USB Flash Drive 64GB",
			Price:             decimal.RequireFromString("12.99"),
			QuantityAvailable: 100,
		},
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	products := sampleCatalog()
	if err := backend.ReplaceCatalog(products); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	fmt.Printf("Seeded catalog with %d products\n", len(products))
	return nil
}
