package main

import (
	"fmt"

	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/app"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot, the ops HTTP API and the scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("app init: %w", err)
		}

		if err = application.Run(); err != nil {
			return fmt.Errorf("app run: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
