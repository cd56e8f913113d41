package main

import (
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/app"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "volunteer_bot",
	Short: "Volunteer registration bot",
	Long: `Telegram bot for volunteer registration: events with capacity limits,
volunteer profiles, an admin panel and a CSV table of registrations.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config; environment only when empty")
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// newOfflineApp builds the application without the Telegram connection for
// maintenance commands.
func newOfflineApp() (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, app.WithoutTelegram())
}
