package logger

import (
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"io"
	"os"
	"time"
)

// Format values accepted by Setup
const (
	FormatJSON   = "json"
	FormatPretty = "pretty"
	FormatAuto   = "auto"
)

// Setup initializes the global zerolog level and returns a logger writing to w.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic), unknown values give info
//   - format: "json" for machine output, "pretty" for human-readable output, "auto" for pretty when w is a terminal
func Setup(w io.Writer, level, format string) zerolog.Logger {
	if format == FormatAuto {
		format = FormatJSON
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			format = FormatPretty
		}
	}

	writer := w
	if format == FormatPretty {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(writer).
		With().
		Timestamp().
		Logger()
}
