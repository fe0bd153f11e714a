package initializer

import (
	"io"
	"log/slog"
	"strings"

	"github.com/amirasaad/bms/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	colorOK    = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	colorWarn  = lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	colorError = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	colorDebug = lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
)

var levelColors = map[log.Level]lipgloss.AdaptiveColor{
	log.DebugLevel: colorDebug,
	log.InfoLevel:  colorOK,
	log.WarnLevel:  colorWarn,
	log.ErrorLevel: colorError,
}

// keyColors highlights the attributes the store and the account service log most.
var keyColors = map[string]lipgloss.AdaptiveColor{
	"error":      colorError,
	"account_id": colorOK,
	"session_id": colorOK,
	"path":       colorDebug,
	"line":       colorWarn,
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func logStyles() *log.Styles {
	styles := log.DefaultStyles()
	for lvl, c := range levelColors {
		styles.Levels[lvl] = lipgloss.NewStyle().
			SetString(strings.ToUpper(lvl.String())).
			Bold(true).
			Padding(0, 1).
			Foreground(c)
	}
	for key, c := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(c)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}
	return styles
}

// setupLogger builds the slog logger used by every package and installs it as the
// slog default. Output goes to w, which is stderr in the CLI.
func setupLogger(cfg *config.Log, w io.Writer) *slog.Logger {
	formatter, ok := formatters[cfg.Format]
	if !ok {
		formatter = log.TextFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.ReportCaller,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(logStyles())

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
