package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lmoreno/toyhaven/internal/tui"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Open the storefront",
	Long: `Open the storefront UI: browse the catalog, manage your cart and
wishlist, check out, and track orders. Without a saved login you can
browse as a guest; cart and checkout require signing in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		return tui.Run(e.cfg, e.store, e.logger.WithScope("shop"))
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
}
