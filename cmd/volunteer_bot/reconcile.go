package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reconcileRepair  bool
	reconcileRebuild bool
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare the CSV table with the database and optionally repair it",
	Long: `Without flags only reports the divergence.
--repair appends the missing rows; --rebuild rewrites the table from the
database, which drops the history of cancelled registrations.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if reconcileRepair && reconcileRebuild {
			return errors.New("--repair and --rebuild are mutually exclusive")
		}

		application, err := newOfflineApp()
		if err != nil {
			return err
		}
		defer func() {
			if cerr := application.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		sync := application.Export()

		if reconcileRebuild {
			n, err := sync.Rebuild(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "rebuilt export table: %d rows\n", n)
			return nil
		}

		check := sync.Check
		if reconcileRepair {
			check = sync.Reconcile
		}

		d, err := check(ctx)
		if err != nil {
			return err
		}
		if d.Empty() {
			fmt.Fprintln(out, "export table is in sync")
			return nil
		}

		fmt.Fprintf(out, "missing created rows: %v\nmissing cancelled rows: %v\n", d.MissingCreated, d.MissingCancelled)
		if reconcileRepair {
			fmt.Fprintln(out, "missing rows appended")
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileRepair, "repair", false, "append missing rows to the table")
	reconcileCmd.Flags().BoolVar(&reconcileRebuild, "rebuild", false, "rewrite the table from the database")
	rootCmd.AddCommand(reconcileCmd)
}
