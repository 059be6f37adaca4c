package components

import (
	"invoice-dashboard/internal/handler"
	"invoice-dashboard/internal/handler/api"
	"invoice-dashboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInvoiceHandler,
		api.NewDashboardHandler,
		middleware.NewSessionMiddleware,
		middleware.NewViewCacheMiddleware,
		func(auth *api.AuthHandler, inv *api.InvoiceHandler, dash *api.DashboardHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Invoice: inv, Dashboard: dash}
		},
		func(l *middleware.Logger, s *middleware.SessionMiddleware, vc *middleware.ViewCacheMiddleware) handler.Middlewares {
			return handler.Middlewares{Logger: l, Session: s, ViewCache: vc}
		},
	),
	fx.Invoke(handler.NewRouter),
)
