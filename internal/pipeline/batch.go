package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"morson/internal/logging"
)

// BatchOptions controls a multi-file run.
type BatchOptions struct {
	Workers int
	// Extension is appended to each input's base name.
	Extension string
	// OutputDir receives every result; empty writes next to each input.
	OutputDir string
	// KeepGoing records per-file failures instead of cancelling the batch.
	KeepGoing bool
	Write     WriteOptions
}

// BatchResult pairs an input path with its conversion or failure.
type BatchResult struct {
	Path   string
	Result *Result
	Err    error
}

// OutputPathFor returns where Batch writes the result for input.
func OutputPathFor(input string, opts BatchOptions) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + opts.Extension
	if name == opts.Extension {
		name = base + opts.Extension
	}
	dir := opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, name)
}

// Batch converts every path concurrently. Results come back in input order.
// Without KeepGoing the first failure cancels the remaining work and is
// returned; with it every failure is reported on its BatchResult.
func (s *Service) Batch(ctx context.Context, paths []string, opts BatchOptions) ([]BatchResult, error) {
	if len(paths) == 0 {
		return nil, ErrNoPath
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if err := checkDistinctOutputs(paths, opts); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, path := range paths {
		results[i].Path = path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			runCtx := logging.WithRunID(gctx, uuid.NewString())
			res, err := s.Run(runCtx, Request{Mode: ModeFile, Path: path}, OutputPathFor(path, opts), opts.Write)
			results[i].Result = res
			results[i].Err = err
			if err != nil && !opts.KeepGoing {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	err := g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.Info("batch complete",
		slog.Int("files", len(paths)),
		slog.Int("failed", failed),
		slog.Int("workers", opts.Workers),
	)
	return results, err
}

func checkDistinctOutputs(paths []string, opts BatchOptions) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		out := OutputPathFor(path, opts)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%s and %s would both write %s", prev, path, out)
		}
		seen[out] = path
	}
	return nil
}
