package v1

import (
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/delivery/http/web"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIBasePath prefixes every JSON route
const APIBasePath = "/api"

type RouterDeps struct {
	ContactUC   domain.ContactUsecase
	PortfolioUC domain.PortfolioUsecase
	HealthUC    domain.HealthUsecase
	Config      *config.Config

	// MetricsRegistry enables /metrics and the contact collectors when set
	MetricsRegistry *prometheus.Registry
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	r := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	origins := append([]string{deps.Config.FrontendURL}, deps.Config.AllowedOrigins...)

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: origins,
		AllowLocalhost: deps.Config.GinMode != gin.ReleaseMode,
	})) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	var contactMetrics *metrics.ContactMetrics
	if deps.MetricsRegistry != nil {
		contactMetrics = metrics.NewContactMetrics("portfolio", deps.MetricsRegistry)
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	// Swagger UI ships inline scripts, so it sits outside the strict CSP groups
	r.GET(APIBasePath+"/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	site := r.Group("/", middleware.SecurityHeadersMiddleware())
	site.StaticFS("/static", http.FS(web.Static()))

	api := r.Group(APIBasePath, middleware.SecurityHeadersMiddleware(), middleware.BodyLimit(deps.Config.MaxBodyBytes))

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	NewContactHandler(api, deps.ContactUC, contactMetrics)
	NewSiteHandler(site, api, deps.PortfolioUC, deps.ContactUC)

	return r, nil
}
