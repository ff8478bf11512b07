// Package http provides the HTTP server and routing for the AMR service.
package http

import (
	"github.com/gin-gonic/gin"

	appresolve "github.com/openamr/amr/internal/application/resolve"
	"github.com/openamr/amr/internal/domain/sir"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/internal/infrastructure/monitoring/prometheus"
	"github.com/openamr/amr/internal/interfaces/http/handlers"
	"github.com/openamr/amr/internal/interfaces/http/middleware"
)

// RouterDeps carries everything the router needs. Metrics and HealthChecks
// are optional.
type RouterDeps struct {
	Resolve      appresolve.Service
	Interpreter  *sir.Interpreter
	Metrics      *prometheus.Metrics
	MetricsPath  string
	Logger       logging.Logger
	HealthChecks map[string]handlers.HealthCheck
}

// NewRouter builds the gin engine with all middleware and routes.
func NewRouter(mode string, deps RouterDeps) *gin.Engine {
	gin.SetMode(mode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	if deps.Logger != nil {
		engine.Use(middleware.RequestLogging(deps.Logger))
	}
	if deps.Metrics != nil {
		engine.Use(middleware.Metrics(deps.Metrics))
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(deps.Metrics.Handler()))
	}

	health := handlers.NewHealthHandler(deps.HealthChecks)
	engine.GET("/health", health.Health)

	resolveHandler := handlers.NewResolveHandler(deps.Resolve)
	interpretHandler := handlers.NewInterpretHandler(deps.Interpreter, deps.Metrics)

	v1 := engine.Group("/api/v1")
	{
		v1.POST("/resolve", resolveHandler.Resolve)
		v1.POST("/resolve/paired", resolveHandler.ResolvePaired)
		v1.GET("/organisms/:code", resolveHandler.Lookup)
		v1.POST("/interpret", interpretHandler.Interpret)
		v1.POST("/mic/parse", interpretHandler.ParseMIC)
	}

	return engine
}
