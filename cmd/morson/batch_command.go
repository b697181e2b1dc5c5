package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"morson/internal/config"
	"morson/internal/pipeline"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var (
		outDir    string
		workers   int
		extension string
		keepGoing bool
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Encode several files concurrently",
		Long: `Batch encodes each file independently and writes <name><extension> next to
the input, or into --out-dir when given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			defer ctx.close()

			opts := pipeline.BatchOptions{
				Workers:   cfg.Batch.Workers,
				Extension: cfg.Batch.Extension,
				OutputDir: cfg.Batch.OutputDir,
				KeepGoing: keepGoing,
				Write: pipeline.WriteOptions{
					Overwrite: cfg.Output.Overwrite,
					Lock:      cfg.Output.Lock,
					LockDir:   cfg.Paths.LockDir,
				},
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if ext := strings.TrimSpace(extension); ext != "" {
				if !strings.HasPrefix(ext, ".") {
					ext = "." + ext
				}
				opts.Extension = ext
			}
			if dir := strings.TrimSpace(outDir); dir != "" {
				if opts.OutputDir, err = config.ExpandPath(dir); err != nil {
					return fmt.Errorf("resolve output directory: %w", err)
				}
			}

			results, batchErr := svc.Batch(cmd.Context(), args, opts)
			if jsonOut {
				if err := writeJSON(cmd, batchJSON(results)); err != nil {
					return err
				}
				return batchErr
			}
			if len(results) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), renderBatchResults(results))
			}
			if batchErr != nil {
				return batchErr
			}
			if failed := countFailed(results); failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for results (defaults to each input's directory)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent conversions (defaults to batch.workers)")
	cmd.Flags().StringVar(&extension, "ext", "", "Extension for result files (defaults to batch.extension)")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue after a file fails")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print results as JSON")
	return cmd
}

type batchEntry struct {
	Path   string           `json:"path"`
	Result *pipeline.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func batchJSON(results []pipeline.BatchResult) []batchEntry {
	out := make([]batchEntry, 0, len(results))
	for _, r := range results {
		entry := batchEntry{Path: r.Path, Result: r.Result}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		out = append(out, entry)
	}
	return out
}

func renderBatchResults(results []pipeline.BatchResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		switch {
		case r.Err != nil:
			rows = append(rows, []string{r.Path, "", "", "", r.Err.Error()})
		case r.Result == nil:
			rows = append(rows, []string{r.Path, "", "", "", "skipped"})
		default:
			rows = append(rows, []string{
				r.Path,
				r.Result.OutputPath,
				strconv.Itoa(r.Result.InputBytes),
				strconv.Itoa(len(r.Result.Output)),
				"ok",
			})
		}
	}
	return renderTable(
		[]string{"Input", "Output", "In", "Out", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}

func countFailed(results []pipeline.BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
