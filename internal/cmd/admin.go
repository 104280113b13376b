package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lmoreno/toyhaven/internal/admintui"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the admin console",
	Long: `Open the admin console: sales dashboard, product management, order
status updates, and user administration. Requires an administrator
account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		return admintui.Run(e.cfg, e.store, e.logger.WithScope("admin"))
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
}
