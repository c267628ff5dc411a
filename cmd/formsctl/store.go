package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/fieldforms-backend/internal/adapter/airtable"
)

func newPingCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "ping [table...]",
		Short: "Check that the store answers for each table",
		Long: "Reads one record from each table. With no arguments every " +
			"configured table is checked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := args
			if len(tables) == 0 {
				t := e.cfg.Tables
				tables = []string{t.Clients, t.Repairs, t.Support, t.Bookings}
			}

			store := e.store()
			failed := 0
			for _, table := range tables {
				start := time.Now()
				n, err := store.Ping(cmd.Context(), table)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%-16s FAIL  %v\n", table, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s OK    records=%d latency=%s\n",
					table, n, time.Since(start).Round(time.Millisecond))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tables failed", failed, len(tables))
			}
			return nil
		},
	}
}

func newFindCmd(e *env) *cobra.Command {
	var (
		table string
		field string
	)
	cmd := &cobra.Command{
		Use:   "find <value>",
		Short: "Find the first record whose field equals value",
		Example: "  formsctl find EXP-2024-001\n" +
			"  formsctl find --table Clientes --field Email info@clinica.es",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if table == "" {
				table = e.cfg.Tables.Repairs
			}
			rec, err := e.store().FindOne(cmd.Context(), table, airtable.Eq(field, args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "table to search (default: repairs table)")
	cmd.Flags().StringVar(&field, "field", "Expediente", "column to match")
	return cmd
}
