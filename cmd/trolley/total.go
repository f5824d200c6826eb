// Total command prints the cart grand total.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Print the cart grand total",
	RunE: func(cmd *cobra.Command, args []string) error {
		led, backend, err := openLedger()
		if err != nil {
			return err
		}
		defer backend.Detach()

		total, err := led.Total()
		if err != nil {
			return fmt.Errorf("compute total: %w", err)
		}

		fmt.Printf("$%s\n", total.StringFixed(2))
		return nil
	},
}
