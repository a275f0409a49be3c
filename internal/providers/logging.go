package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/fpl-data-explorer/internal/logging"
)

// logWithProvider emits a log entry using the request-scoped logger when present
// and always includes the provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
