package bootstrap

import (
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/internal/metrics"
	"invoice-dashboard/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		metrics.NewRecorder,
		func(r *metrics.Recorder) shared.ActionMetrics {
			return r
		},
		func(r *metrics.Recorder) middleware.ViewCacheMetrics {
			return r
		},
	),
)
