package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/geostack-labs/fgbscope/internal/cli/config"
)

type configKey struct{}
type loggerKey struct{}

// WithSession stores the resolved config and logger for command use.
func WithSession(ctx context.Context, cfg *config.Config, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	return context.WithValue(ctx, loggerKey{}, logger)
}

// sessionFrom retrieves the config and logger stored by the root
// command, falling back to safe defaults so commands stay runnable in
// isolation (tests construct them directly).
func sessionFrom(cmd *cobra.Command) (*config.Config, *slog.Logger) {
	cfg := &config.Config{
		Watch: true,
		HTTP:  config.HTTPConfig{TimeoutSeconds: config.DefaultTimeoutSeconds, UserAgent: config.DefaultUserAgent},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if ctx := cmd.Context(); ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
			cfg = c
		}
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			logger = l
		}
	}
	return cfg, logger
}
