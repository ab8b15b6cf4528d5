package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/gchait/minigrep/internal/input"
	"github.com/gchait/minigrep/internal/matcher"
	"github.com/gchait/minigrep/internal/output"
)

// Run executes the search with the given config.
// Returns exit code: 0 = match found, 1 = no match, 2 = error.
func Run(cfg Config) int {
	return run(cfg, os.Stdout, NewLogger(os.Stderr))
}

// NewLogger creates the CLI logger. Warnings and errors only; results go to
// stdout, diagnostics to w.
func NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level: log.WarnLevel,
	})

	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("3")).
		Bold(true)
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("9")).
		Bold(true)
	logger.SetStyles(styles)

	return logger
}

// run is the testable core of Run. Configuration and pattern errors abort
// before any output is produced; per-file read errors skip the file with a
// warning, leave prior output intact, and turn the final exit code into 2.
func run(cfg Config, stdout io.Writer, logger *log.Logger) int {
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid arguments", "err", err)
		return 2
	}

	m, err := matcher.New(cfg.Pattern, cfg.IgnoreCase)
	if err != nil {
		logger.Error("invalid pattern", "pattern", cfg.Pattern, "err", err)
		return 2
	}

	formatter, err := output.New(cfg.Highlight, cfg.Machine)
	if err != nil {
		logger.Error("invalid mode", "err", err)
		return 2
	}

	w := output.NewWriter(stdout)
	files := input.NewFileReader()
	stdin := input.NewStdinReader()

	hasMatch := false
	hadErr := false
	var buf []byte

	for _, path := range cfg.Paths {
		var src input.Reader = files
		if path == "-" {
			src = stdin
		}

		lines, err := src.Open(path)
		if err != nil {
			logger.Warn("skipping file", "path", path, "err", err)
			hadErr = true
			continue
		}

		for lines.Next() {
			spans := m.FindMatches(lines.Line())
			if len(spans) == 0 {
				continue
			}
			hasMatch = true

			buf = formatter.Render(buf[:0], output.LineResult{
				FileID:  path,
				LineNum: lines.LineNum(),
				Line:    lines.Line(),
				Spans:   spans,
			})
			if err := w.Write(buf); err != nil {
				logger.Error("write failed", "err", err)
				lines.Close()
				return 2
			}
		}
		if err := lines.Err(); err != nil {
			logger.Warn("read failed", "path", path, "err", err)
			hadErr = true
		}
		lines.Close()
	}

	if err := w.Flush(); err != nil {
		logger.Error("write failed", "err", err)
		return 2
	}

	switch {
	case hadErr:
		return 2
	case hasMatch:
		return 0
	default:
		return 1
	}
}
