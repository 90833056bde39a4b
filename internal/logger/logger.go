package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

type Config struct {
	Level     string
	Format    string
	AddSource bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.DiscardHandler)
)

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New builds a logger writing to w. Timestamps are UTC RFC3339.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return slog.New(h), nil
}

// Setup builds the logger and installs it as the global and slog default
func Setup(w io.Writer, cfg Config) (*slog.Logger, error) {
	l, err := New(w, cfg)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	global = l
	mu.Unlock()
	slog.SetDefault(l)

	l.Debug("logger.initialized", "level", cfg.Level, "format", cfg.Format)
	return l, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
