package router

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/ngo-ledger/backend/api"
	"github.com/ngo-ledger/backend/internal/controllers/healthz"
	"github.com/ngo-ledger/backend/internal/controllers/root"
	v1 "github.com/ngo-ledger/backend/internal/controllers/v1"
	"github.com/ngo-ledger/backend/internal/controllers/version"
	"github.com/ngo-ledger/backend/internal/documents"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var apiVersion = "0.0.0"

var errMethodNotAllowed = errors.New("this HTTP method is not allowed for the endpoint you called")

// Config configures the gin engine with all middlewares.
//
// The returned teardown function must be called when the engine is not
// used anymore. It unregisters the Prometheus metrics.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("Could not unregister Prometheus metrics")
		}
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": errMethodNotAllowed.Error()})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", apiVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "NGO Ledger"
	docs.SwaggerInfo.Version = apiVersion
	docs.SwaggerInfo.Description = "The backend for NGO Ledger, the financial ledger and foreign donation compliance tracker for associations."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
//
// g generates the documents for foreign donation reports.
func AttachRoutes(group *gin.RouterGroup, g documents.Generator) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), apiVersion)
	healthz.RegisterRoutes(group.Group("/healthz"))

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	// API v1 setup
	v1Group := group.Group("/v1")
	v1.RegisterRootRoutes(v1Group.Group(""))
	v1.RegisterDonorRoutes(v1Group.Group("/donors"))
	v1.RegisterProjectRoutes(v1Group.Group("/projects"))
	v1.RegisterBudgetAllocationRoutes(v1Group.Group("/budget-allocations"))
	v1.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	v1.RegisterForeignDonationReportRoutes(v1Group.Group("/foreign-donation-reports"), g)
	v1.RegisterDashboardRoutes(v1Group.Group("/dashboard"))
}

// metrics returns all collectors registered by the router.
func metrics() []prometheus.Collector {
	return append([]prometheus.Collector{requestCount, requestDuration}, models.Collectors...)
}
