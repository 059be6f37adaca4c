package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoice-dashboard/internal/handler/api"
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/internal/metrics"
	"invoice-dashboard/internal/pkg/config"
	"invoice-dashboard/internal/usecase/commands"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Invoice   *api.InvoiceHandler
	Dashboard *api.DashboardHandler
}

type Middlewares struct {
	Logger    *middleware.Logger
	Session   *middleware.SessionMiddleware
	ViewCache *middleware.ViewCacheMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares, recorder *metrics.Recorder) {
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, cfg, h, mw, recorder)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares, recorder *metrics.Recorder) {
	engine.GET("/health", healthCheck)
	engine.GET(cfg.Metrics.Path, gin.WrapH(recorder.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/login", Handler: h.Auth.LoginPage, Mw: []gin.HandlerFunc{mw.Session.RedirectIfSignedIn()}},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
	})

	dashboard := engine.Group(commands.PathDashboard)
	dashboard.Use(mw.Session.RequireSession())
	{
		addRoutes(dashboard, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Dashboard.Summary, Mw: []gin.HandlerFunc{mw.ViewCache.CacheView(commands.PathDashboard)}},
			{Method: http.MethodGet, Path: "/invoices", Handler: h.Invoice.List, Mw: []gin.HandlerFunc{mw.ViewCache.CacheView(commands.PathInvoices)}},
			{Method: http.MethodGet, Path: "/invoices/create", Handler: h.Invoice.CreateForm},
			{Method: http.MethodPost, Path: "/invoices", Handler: h.Invoice.Create},
			{Method: http.MethodGet, Path: "/invoices/:id/edit", Handler: h.Invoice.EditForm},
			{Method: http.MethodGet, Path: "/invoices/:id/edit/loading", Handler: api.EditInvoiceLoading},
			{Method: http.MethodPost, Path: "/invoices/:id", Handler: h.Invoice.Update},
			{Method: http.MethodPost, Path: "/invoices/:id/delete", Handler: h.Invoice.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers route middleware as regular gin handlers so that
// c.Next inside them reaches the route handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
