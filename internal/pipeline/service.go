package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"morson/internal/fileutil"
	"morson/internal/history"
	"morson/internal/logging"
	"morson/internal/morse"
)

// Recorder stores completed conversions.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) (history.Entry, error)
}

// Result is the outcome of one conversion.
type Result struct {
	RunID      string      `json:"run_id"`
	Source     Mode        `json:"source"`
	Input      string      `json:"input"`
	InputBytes int         `json:"input_bytes"`
	Morse      string      `json:"morse"`
	Output     string      `json:"output"`
	OutputPath string      `json:"output_path,omitempty"`
	Stats      morse.Stats `json:"stats"`
}

// WriteOptions mirror the output section of the configuration.
type WriteOptions struct {
	Overwrite bool
	Lock      bool
	LockDir   string
}

// Service runs conversions. A nil recorder disables history.
type Service struct {
	logger   *slog.Logger
	recorder Recorder
}

// NewService constructs a Service.
func NewService(logger *slog.Logger, recorder Recorder) *Service {
	return &Service{
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		recorder: recorder,
	}
}

// Convert validates req, reads its input and encodes it. Nothing is written.
func (s *Service) Convert(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	text, err := req.read()
	if err != nil {
		return nil, err
	}

	res := convertText(text)
	res.RunID = runIDFor(ctx)
	res.Source = req.Mode
	res.Input = req.Label()

	log := logging.WithContext(ctx, s.logger)
	log.Debug("converted input",
		slog.String(logging.FieldSource, res.Input),
		slog.Int("input_bytes", res.InputBytes),
		slog.Int("morse_len", len(res.Morse)),
		slog.Int("output_len", len(res.Output)),
	)
	if res.Stats.Overflow > 0 {
		log.Warn("dash runs longer than the alphabet were dropped",
			logging.Alert("run_overflow"),
			slog.String(logging.FieldSource, res.Input),
			slog.Int("count", res.Stats.Overflow),
			slog.Int("longest_run", res.Stats.LongestRun),
		)
	}
	return res, nil
}

// Write stores res.Output at path and records the conversion.
func (s *Service) Write(ctx context.Context, res *Result, path string, opts WriteOptions) error {
	if res == nil {
		return fmt.Errorf("write output: no result")
	}
	err := fileutil.WriteFile(ctx, path, []byte(res.Output), fileutil.WriteOptions{
		Overwrite: opts.Overwrite,
		Lock:      opts.Lock,
		LockDir:   opts.LockDir,
	})
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	res.OutputPath = path

	logging.WithContext(ctx, s.logger).Info("obfuscated output written",
		slog.String(logging.FieldSource, res.Input),
		slog.String(logging.FieldOutput, path),
		slog.Int("bytes", len(res.Output)),
	)
	s.record(ctx, res)
	return nil
}

// Run converts req and writes the result to path.
func (s *Service) Run(ctx context.Context, req Request, path string, opts WriteOptions) (*Result, error) {
	req.OutputPath = path
	res, err := s.Convert(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.Write(ctx, res, path, opts); err != nil {
		return nil, err
	}
	return res, nil
}

// Record stores res in history without writing any output file.
func (s *Service) Record(ctx context.Context, res *Result) {
	s.record(ctx, res)
}

// record logs history failures instead of failing the conversion: the output
// has already been produced.
func (s *Service) record(ctx context.Context, res *Result) {
	if s.recorder == nil || res == nil {
		return
	}
	_, err := s.recorder.Record(ctx, history.Entry{
		ID:         res.RunID,
		Source:     string(res.Source),
		Input:      res.Input,
		OutputPath: res.OutputPath,
		InputBytes: res.InputBytes,
		MorseLen:   len(res.Morse),
		OutputLen:  len(res.Output),
		DotRuns:    res.Stats.DotRuns,
		DashRuns:   res.Stats.DashRuns,
		Overflow:   res.Stats.Overflow,
	})
	if err != nil {
		logging.WithContext(ctx, s.logger).Warn("history record failed",
			logging.Alert("history"),
			logging.Error(err),
		)
	}
}

func convertText(text string) *Result {
	encoded := morse.Encode(text)
	out, stats := morse.CompactStats(encoded)
	return &Result{
		InputBytes: len(text),
		Morse:      encoded,
		Output:     out,
		Stats:      stats,
	}
}

// runIDFor reuses the run id on ctx or mints a new one.
func runIDFor(ctx context.Context) string {
	if id, ok := logging.RunIDFromContext(ctx); ok {
		return id
	}
	return uuid.NewString()
}
