package delivery

import (
	"net/http"

	"warehouse_api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouteRegistrar interface {
	RegisterRoutes(router gin.IRouter)
}

// NewRouter wires the middleware chain, the service pages and every
// resource under /api.
func NewRouter(logger *logrus.Logger, resources ...RouteRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestLogger(logger),
		Metrics(),
		Recovery(logger),
		ErrorHandler(logger),
	)

	router.GET("/", serveIndexPage)
	router.GET("/api-docs", serveAPIDocs)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	logger.Info("Registered index page at /, API docs at /api-docs, metrics at /metrics")

	api := router.Group("/api")
	for _, r := range resources {
		r.RegisterRoutes(api)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Route not found"})
	})

	logger.Info("API Routes registered.")
	return router
}
