package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"morson/internal/config"
	"morson/internal/logging"
	"morson/internal/morse"
	"morson/internal/pipeline"
)

type encodeOptions struct {
	console     bool
	file        string
	text        string
	hasText     bool
	output      string
	toStdout    bool
	showMorse   bool
	showStats   bool
	jsonOut     bool
	quiet       bool
	noOverwrite bool
}

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var opts encodeOptions

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode console input, a file, or text into compacted Morse code",
		Long: `Encode reads text, converts it to Morse code, compacts runs of dots and
dashes into tokens, and writes the result to the output file.

Sources:
  -c, --console   read one line from standard input
  -f, --file      read a whole file (also accepted as a positional argument)
  -t, --text      encode the given text`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasText = cmd.Flags().Changed("text")
			if len(args) == 1 {
				if opts.file != "" {
					return fmt.Errorf("file given twice: %q and %q", opts.file, args[0])
				}
				if opts.hasText || opts.console {
					return fmt.Errorf("file argument %q cannot be combined with --text or --console", args[0])
				}
				opts.file = args[0]
			}
			return runEncode(cmd, ctx, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.console, "console", "c", false, "Read one line from standard input")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read input from a file")
	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Encode the given text")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (defaults to output.path from config)")
	cmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "Print the result instead of writing the output file")
	cmd.Flags().BoolVar(&opts.showMorse, "morse", false, "Also print the uncompacted Morse code")
	cmd.Flags().BoolVar(&opts.showStats, "stats", false, "Print run statistics")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the banner and prompts")
	cmd.Flags().BoolVar(&opts.noOverwrite, "no-overwrite", false, "Fail if the output file already exists")
	cmd.MarkFlagsMutuallyExclusive("console", "file", "text")
	cmd.MarkFlagsMutuallyExclusive("stdout", "output")
	return cmd
}

func (o encodeOptions) request(stdin io.Reader) pipeline.Request {
	switch {
	case o.console:
		return pipeline.Request{Mode: pipeline.ModeConsole, Stdin: stdin}
	case o.file != "":
		return pipeline.Request{Mode: pipeline.ModeFile, Path: o.file}
	case o.hasText:
		return pipeline.Request{Mode: pipeline.ModeText, Text: o.text}
	default:
		return pipeline.Request{}
	}
}

func (o encodeOptions) outputPath(cfg *config.Config) (string, error) {
	if strings.TrimSpace(o.output) == "" {
		return cfg.Output.Path, nil
	}
	path, err := config.ExpandPath(strings.TrimSpace(o.output))
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	return path, nil
}

func runEncode(cmd *cobra.Command, ctx *commandContext, opts encodeOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	svc, err := ctx.service()
	if err != nil {
		return err
	}
	defer ctx.close()

	outPath, err := opts.outputPath(cfg)
	if err != nil {
		return err
	}

	req := opts.request(cmd.InOrStdin())
	if !opts.toStdout {
		req.OutputPath = outPath
	}
	if err := req.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := !opts.quiet && !opts.jsonOut && !opts.toStdout
	if interactive {
		printBanner(out)
		if req.Mode == pipeline.ModeConsole {
			fmt.Fprintln(out, "Please write the text to be encoded below, press enter to generate the output file.")
			fmt.Fprintln(out)
		}
	}

	runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())
	res, err := svc.Convert(runCtx, req)
	if err != nil {
		return err
	}

	if opts.toStdout {
		svc.Record(runCtx, res)
	} else {
		writeOpts := pipeline.WriteOptions{
			Overwrite: cfg.Output.Overwrite && !opts.noOverwrite,
			Lock:      cfg.Output.Lock,
			LockDir:   cfg.Paths.LockDir,
		}
		if err := svc.Write(runCtx, res, outPath, writeOpts); err != nil {
			return err
		}
	}

	if opts.jsonOut {
		return writeJSON(cmd, res)
	}

	if opts.showMorse {
		fmt.Fprintln(out, res.Morse)
	}
	if opts.toStdout {
		fmt.Fprintln(out, res.Output)
	}
	if opts.showStats {
		fmt.Fprintln(out, renderStats(res.Stats))
	}
	if res.Stats.Overflow > 0 && !opts.quiet {
		printStatus(cmd.ErrOrStderr(), statusWarn, "%d dash run(s) longer than %d marks have no letter and were dropped", res.Stats.Overflow, len(morse.Alphabet))
	}
	if !opts.toStdout && !opts.quiet {
		printStatus(out, statusOK, "Obfuscated code generated in `%s` file.", res.OutputPath)
	}
	return nil
}

func renderStats(stats morse.Stats) string {
	rows := [][]string{
		{"Input length", strconv.Itoa(stats.InputLen)},
		{"Output length", strconv.Itoa(stats.OutputLen)},
		{"Ratio", strconv.FormatFloat(stats.Ratio(), 'f', 2, 64)},
		{"Dot runs", strconv.Itoa(stats.DotRuns)},
		{"Dash runs", strconv.Itoa(stats.DashRuns)},
		{"Longest run", strconv.Itoa(stats.LongestRun)},
		{"Separators", strconv.Itoa(stats.Separators)},
		{"Pass-through", strconv.Itoa(stats.PassThrough)},
		{"Dropped runs", strconv.Itoa(stats.Dropped)},
		{"Runs past Z", strconv.Itoa(stats.Overflow)},
	}
	return renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}
