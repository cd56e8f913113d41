package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the registrations table as CSV to a file or stdout",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		application, err := newOfflineApp()
		if err != nil {
			return err
		}
		defer func() {
			if cerr := application.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" && exportOut != "-" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()
			w = f
		}

		return application.WriteExport(cmd.Context(), w)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, stdout when empty or -")
	rootCmd.AddCommand(exportCmd)
}
