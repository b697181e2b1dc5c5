package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"morson/internal/morse"
)

func newTableCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "table",
		Short:       "Show the Morse symbol table and each symbol's compacted form",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols := morse.Symbols()
			if jsonOut {
				type row struct {
					Char    string `json:"char"`
					Morse   string `json:"morse"`
					Compact string `json:"compact"`
				}
				out := make([]row, 0, len(symbols))
				for _, s := range symbols {
					out = append(out, row{Char: s.Char, Morse: s.Pattern, Compact: morse.Compact(s.Pattern)})
				}
				return writeJSON(cmd, out)
			}

			rows := make([][]string, 0, len(symbols))
			for _, s := range symbols {
				rows = append(rows, []string{s.Char, s.Pattern, morse.Compact(s.Pattern)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Char", "Morse", "Compact"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the table as JSON")
	return cmd
}
