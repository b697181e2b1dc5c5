package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var errHistoryDisabled = errors.New("history is disabled (set history.enabled = true in the config)")

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.historyStore()
			if err != nil {
				return err
			}
			if store == nil {
				return errHistoryDisabled
			}
			defer ctx.close()

			if !cmd.Flags().Changed("limit") {
				limit = cfg.History.Limit
			}
			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No conversions recorded")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				output := e.OutputPath
				if output == "" {
					output = "-"
				}
				rows = append(rows, []string{
					e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					e.Source,
					e.Input,
					output,
					strconv.Itoa(e.InputBytes),
					strconv.Itoa(e.OutputLen),
					strconv.Itoa(e.DotRuns + e.DashRuns),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Source", "Input", "Output", "In", "Out", "Runs"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries to show (defaults to history.limit)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print entries as JSON")
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.historyStore()
			if err != nil {
				return err
			}
			if store == nil {
				return errHistoryDisabled
			}
			defer ctx.close()

			n, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d conversion(s)\n", n)
			return nil
		},
	}
}
