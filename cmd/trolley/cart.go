// Cart command group: add, update, remove, show.
package main

import "github.com/spf13/cobra"

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
	Long:  `Cart groups the shopping-cart operations: add, update, remove, and show.`,
}

func init() {
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartShowCmd)
}
