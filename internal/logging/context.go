package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// FromContext returns the logger carried by ctx, or a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every event logged through ctx with the subsystem name
// (maintenance, tabs, idle).
func WithComponent(ctx context.Context, component string) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithTab tags events with the tab they concern. The field is numeric so it
// matches the tab_id written directly by the tab manager.
func WithTab(ctx context.Context, id entity.TabID) context.Context {
	return with(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Int64("tab_id", int64(id))
	})
}

func with(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	logger := FromContext(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		return ctx
	}
	return fields(logger.With()).Logger().WithContext(ctx)
}
