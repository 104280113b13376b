// Package cmd defines the toyhaven CLI: the storefront and admin TUIs
// plus the session commands that let scripts log in and out without a
// terminal UI.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lmoreno/toyhaven/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "toyhaven",
	Short: "Terminal storefront and admin console for the Toyhaven shop",
	Long: `Toyhaven is a terminal client for the Toyhaven toy shop: browse the
catalog, manage your cart and wishlist, check out with cash on delivery
or PayPal, and track orders. Administrators get a separate console for
products, orders, users, and the sales dashboard.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/toyhaven/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().String("api-url", "", "backend API base URL")
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/toyhaven")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TOYHAVEN")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TOYHAVEN_API_BASE_URL for api.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
