package services

import (
	"context"
	"log/slog"

	"github.com/svarno/svarno_backend/internal/middleware"
)

// BaseService gives services the request-scoped logger so log lines carry
// the request id and user id set by the middleware.
type BaseService struct{}

func (s *BaseService) logger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs err at error level with extra attributes.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logger(ctx).ErrorContext(ctx, msg, withError(err, keyvals)...)
}

// LogWarn logs a recoverable failure, such as a degraded read.
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	s.logger(ctx).WarnContext(ctx, msg, withError(err, keyvals)...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.logger(ctx).InfoContext(ctx, msg, keyvals...)
}

func withError(err error, keyvals []any) []any {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.Any("error", err))
	return append(args, keyvals...)
}
