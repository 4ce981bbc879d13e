package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"circularmetals-backend/internal/assessment"
	"circularmetals-backend/internal/datasets"
	"circularmetals-backend/internal/reports"
	"circularmetals-backend/internal/services/health"
	"circularmetals-backend/internal/shared/config"
	"circularmetals-backend/internal/shared/metrics"
	"circularmetals-backend/internal/shared/server/middleware"
	"circularmetals-backend/internal/shared/server/respond"
)

var apiEndpoints = []string{
	"GET /api/health",
	"POST /api/assessment",
	"GET /api/environmental-impact",
	"GET /api/circularity-indicators",
	"GET /api/flow-data",
	"GET /api/pie-data",
	"POST /api/reports/export",
	"GET /api/metrics",
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	healthSvc := health.NewService()

	api := r.Group("/api")
	api.GET("", func(c *gin.Context) {
		respond.OK(c, gin.H{"message": "API root", "endpoints": apiEndpoints})
	})
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())

	assessment.NewHandler().RegisterRoutes(api)
	datasets.NewHandler().RegisterRoutes(api)
	reports.NewHandler().RegisterRoutes(api)

	r.NoRoute(spaFallback(cfg.StaticDir))

	return r
}

// spaFallback serves frontend assets from staticDir, falling back to the
// entry document so client-side routes resolve at any depth. Unmatched API
// paths get a JSON 404 instead.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			respond.Error(c, http.StatusNotFound, "Not found")
			return
		}

		candidate := filepath.Join(staticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
