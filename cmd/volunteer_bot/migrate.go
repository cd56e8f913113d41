package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Миграции применяются при сборке приложения.
		application, err := newOfflineApp()
		if err != nil {
			return err
		}
		return application.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
