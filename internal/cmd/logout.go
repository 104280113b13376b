package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/session"
)

var logoutAdmin bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard saved credentials",
	Long: `Discard the saved session token. By default this signs out the
shopper session; --admin signs out the admin session instead. The two
are independent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		if logoutAdmin {
			client := api.NewAdmin(e.cfg, api.TokenFunc(e.store.AdminToken))
			sess := session.NewAdminSession(e.store, client, e.logger.WithScope("logout"))
			sess.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Admin session cleared")
			return nil
		}

		client := api.New(e.cfg, api.TokenFunc(e.store.UserToken))
		sess := session.NewSession(e.store, client, e.logger.WithScope("logout"))
		sess.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutAdmin, "admin", false, "sign out of the admin console")
	rootCmd.AddCommand(logoutCmd)
}
