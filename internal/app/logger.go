package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"shegamart/internal/config"
	"shegamart/internal/logx"
)

// NewLogger builds the process logger from LOG_BACKEND and LOG_LEVEL.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	level := strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if level == "" {
		level = "info"
	}
	switch cfg.Log.Backend {
	case "zap":
		l, err := logx.NewZapProduction(level)
		if err != nil {
			return nil, fmt.Errorf("zap logger: %w", err)
		}
		return l, nil
	case "", "slog":
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
		return logx.NewSlogAdapter(base), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Log.Backend)
	}
}
