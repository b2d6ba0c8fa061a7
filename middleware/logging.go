// Package middleware provides ready-made interceptors for the typecheck
// package.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gvvaughan/typecheck"
)

// LoggingInterceptor creates an interceptor that logs checked calls using slog.
// It logs the start and end of each call, including duration and error status.
func LoggingInterceptor(logger *slog.Logger) typecheck.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(info *typecheck.CallInfo, args []any, next typecheck.Invoker) ([]any, error) {
		start := time.Now()

		logger.Info("call started",
			slog.String("func", info.Name),
			slog.Int("args", info.NumArgs),
		)

		res, err := next(args)
		duration := time.Since(start)

		if err != nil {
			logger.Error("call failed",
				slog.String("func", info.Name),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
		} else {
			logger.Info("call completed",
				slog.String("func", info.Name),
				slog.Duration("duration", duration),
				slog.Int("results", len(res)),
			)
		}

		return res, err
	}
}
