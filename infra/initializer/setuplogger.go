package initializer

import (
	"log/slog"
	"os"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// levelStyle pairs the badge and color rendered in front of log lines.
type levelStyle struct {
	badge string
	color string
}

var levelStyles = map[log.Level]levelStyle{
	log.DebugLevel: {"🐛", "#7E57C2"},
	log.InfoLevel:  {"ℹ️", "#04B575"},
	log.WarnLevel:  {"⚠️", "#EE6FF8"},
	log.ErrorLevel: {"❌", "#FF6B6B"},
}

// setupLogger builds the charmbracelet logger from config and installs it as
// the process-wide slog default.
func setupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	for level, ls := range levelStyles {
		color := lipgloss.AdaptiveColor{Light: ls.color, Dark: ls.color}
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(ls.badge).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
		styles.Keys[level.String()] = lipgloss.NewStyle().Foreground(color)
		styles.Values[level.String()] = lipgloss.NewStyle().Bold(true)
	}
	muted := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
	for _, key := range []string{"prefix", "caller", "time"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(muted)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)
	return slogger
}
