// Package logging builds the zerolog logger used by the i18n-report
// commands. Logs go to stderr so that report output on stdout stays
// machine readable.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w at the given level. The console
// format is colored only when w is a terminal.
func New(level, format string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer
	switch format {
	case FormatJSON:
		out = w
	case FormatConsole, "":
		out = ConsoleWriter(w)
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// ConsoleWriter returns a human-readable writer for zerolog that has
// NoColor set unless w is a terminal.
func ConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w), TimeFormat: time.TimeOnly}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
