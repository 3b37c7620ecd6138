package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eggmandi/ledger-api/internal/config"
	"github.com/eggmandi/ledger-api/internal/presentation/http/dto/response"
	"github.com/eggmandi/ledger-api/internal/presentation/http/handler"
	"github.com/eggmandi/ledger-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Ledger  *handler.LedgerHandler
	Revenue *handler.RevenueHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API routes, rate limited per client
	api := router.Group("/api")

	limiterCfg := middleware.DefaultRateLimiterConfig()
	if deps.Cfg.RateLimit.Requests > 0 {
		duration := deps.Cfg.RateLimit.Duration
		if duration <= 0 {
			duration = 1
		}
		limiterCfg = middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		}
	}
	rateLimiter := middleware.NewClientRateLimiter(limiterCfg)
	api.Use(rateLimiter.Middleware())
	{
		api.GET("/dates", h.Ledger.ListDates)
		api.GET("/entries", h.Ledger.GetEntries)
		api.POST("/entries", h.Ledger.SaveEntries)
		api.GET("/mybillbook-revenue", h.Revenue.GetRevenue)
	}

	router.NoRoute(fallbackHandler(deps.Cfg.Static.Dir))

	return router
}

// fallbackHandler serves the static frontend when a directory is configured,
// and the JSON 404 for everything else. API paths never fall through to the
// static files.
func fallbackHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir != "" && c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			rel := c.Request.URL.Path
			if rel == "/" {
				rel = "/index.html"
			}
			full := filepath.Join(staticDir, filepath.Clean("/"+rel))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				c.File(full)
				return
			}
		}
		response.NotFound(c)
	}
}
