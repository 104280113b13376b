package cmd

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/session"
)

var (
	loginEmail string
	loginAdmin bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and save credentials",
	Long: `Sign in with email and password and save the session token for the
storefront and other commands. With --admin the credentials are checked
against the admin API and stored separately, so a shopper login and an
admin login can coexist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		email := strings.TrimSpace(loginEmail)
		if email == "" {
			fmt.Fprint(cmd.OutOrStdout(), "Email: ")
			if _, err := fmt.Fscanln(cmd.InOrStdin(), &email); err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
		}

		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		if loginAdmin {
			client := api.NewAdmin(e.cfg, api.TokenFunc(e.store.AdminToken))
			sess := session.NewAdminSession(e.store, client, e.logger.WithScope("login"))
			if err := sess.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as admin %s\n", sess.Current().Email)
			return nil
		}

		client := api.New(e.cfg, api.TokenFunc(e.store.UserToken))
		sess := session.NewSession(e.store, client, e.logger.WithScope("login"))
		if err := sess.Login(cmd.Context(), email, password); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", sess.Current().Email)
		return nil
	},
}

// readPassword prompts without echo when stdin is a terminal, and falls
// back to a plain line read so the command stays scriptable.
func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	if term.IsTerminal(int(syscall.Stdin)) {
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	var password string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &password); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email (prompted if omitted)")
	loginCmd.Flags().BoolVar(&loginAdmin, "admin", false, "sign in to the admin console")
	rootCmd.AddCommand(loginCmd)
}
