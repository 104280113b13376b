package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		out := cmd.OutOrStdout()

		client := api.New(e.cfg, api.TokenFunc(e.store.UserToken))
		sess := session.NewSession(e.store, client, e.logger.WithScope("whoami"))
		sess.Restore(cmd.Context())
		if who := sess.Current(); who != nil {
			fmt.Fprintf(out, "User:  %s <%s>\n", who.Name, who.Email)
		} else {
			fmt.Fprintln(out, "User:  not signed in")
		}

		adminClient := api.NewAdmin(e.cfg, api.TokenFunc(e.store.AdminToken))
		adminSess := session.NewAdminSession(e.store, adminClient, e.logger.WithScope("whoami"))
		adminSess.Restore()
		if who := adminSess.Current(); who != nil {
			if err := adminSess.Validate(cmd.Context()); err != nil {
				fmt.Fprintln(out, "Admin: saved session is no longer valid")
			} else {
				fmt.Fprintf(out, "Admin: %s <%s>\n", who.Name, who.Email)
			}
		} else {
			fmt.Fprintln(out, "Admin: not signed in")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
