package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"morson/internal/fileutil"
)

// Mode selects where the text to encode comes from.
type Mode string

const (
	// ModeConsole reads the first line from a stream.
	ModeConsole Mode = "console"
	// ModeFile reads a whole file.
	ModeFile Mode = "file"
	// ModeText uses the request text as-is.
	ModeText Mode = "text"
)

var (
	// ErrNoMode is returned when no input source was selected.
	ErrNoMode = errors.New("specify a source: console input or a file")
	// ErrNoPath is returned when file mode has no path.
	ErrNoPath = errors.New("specify a file path")
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file could not be found, make sure the specified path is correct")
	// ErrOutputCollision is returned when the input would be overwritten by the result.
	ErrOutputCollision = errors.New("input file must not be the output file")
	// ErrNoInput is returned when a console stream ends before any text arrives.
	ErrNoInput = errors.New("no input received")
)

// Request describes one conversion.
type Request struct {
	Mode Mode
	// Path is the input file for ModeFile.
	Path string
	// Text is the literal input for ModeText.
	Text string
	// Stdin is the stream for ModeConsole.
	Stdin io.Reader
	// OutputPath is checked against Path so a file cannot encode over itself.
	OutputPath string
}

// Label names the input for logs and history.
func (r Request) Label() string {
	switch r.Mode {
	case ModeFile:
		return r.Path
	case ModeConsole:
		return "stdin"
	default:
		return "text"
	}
}

// Validate checks the request before any input is read.
func (r Request) Validate() error {
	switch r.Mode {
	case ModeConsole:
		if r.Stdin == nil {
			return fmt.Errorf("%w: console mode needs an input stream", ErrNoInput)
		}
		return nil
	case ModeText:
		return nil
	case ModeFile:
	case "":
		return ErrNoMode
	default:
		return fmt.Errorf("unknown input mode %q", r.Mode)
	}

	if strings.TrimSpace(r.Path) == "" {
		return ErrNoPath
	}
	info, err := os.Stat(r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, r.Path)
		}
		return fmt.Errorf("inspect input %q: %w", r.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %q is a directory", r.Path)
	}
	if r.OutputPath != "" && fileutil.SamePath(r.Path, r.OutputPath) {
		return fmt.Errorf("%w: %s", ErrOutputCollision, r.Path)
	}
	return nil
}

// read returns the text to encode.
func (r Request) read() (string, error) {
	switch r.Mode {
	case ModeFile:
		data, err := os.ReadFile(r.Path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	case ModeConsole:
		return readLine(r.Stdin)
	default:
		return r.Text, nil
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read console input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}
	return strings.TrimRight(line, "\r\n"), nil
}
