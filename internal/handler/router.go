package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agora-exchange/internal/handler/api"
	"agora-exchange/internal/handler/middleware"
	"agora-exchange/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	healthHandler *api.HealthHandler,
	resourceHandler *api.EffectiveResourceHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, healthHandler, resourceHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, healthHandler *api.HealthHandler, resourceHandler *api.EffectiveResourceHandler) {
	engine.GET("/health", healthHandler.Check)

	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	resources := engine.Group("/" + api.EffectiveResourceCollection)
	{
		addRoutes(resources, []route{
			{Method: http.MethodPost, Path: "", Handler: resourceHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: resourceHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: resourceHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: resourceHandler.Replace},
			{Method: http.MethodDelete, Path: "/:id", Handler: resourceHandler.Delete},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
