package mediator

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/tenant"
)

// Recorder receives per-request timings.
type Recorder interface {
	ObserveRequest(name string, d time.Duration, err error)
}

// Logging logs every dispatch at debug, failures at warn.
func Logging(logger *slog.Logger) Behavior {
	return func(ctx context.Context, name string, next Next) error {
		start := time.Now()
		err := next(ctx)

		tenantID, _ := tenant.FromContext(ctx)
		attrs := []any{
			"request", name,
			"tenant_id", tenantID,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			logger.WarnContext(ctx, "Request failed", append(attrs, "error", err)...)
			return err
		}
		logger.DebugContext(ctx, "Request handled", attrs...)
		return nil
	}
}

// Metrics reports every dispatch to rec.
func Metrics(rec Recorder) Behavior {
	return func(ctx context.Context, name string, next Next) error {
		start := time.Now()
		err := next(ctx)
		rec.ObserveRequest(name, time.Since(start), err)
		return err
	}
}
