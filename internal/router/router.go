package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	authHandler "github.com/medcoop/clinic-api/internal/handler/auth"
	doctorHandler "github.com/medcoop/clinic-api/internal/handler/doctor"
	healthHandler "github.com/medcoop/clinic-api/internal/handler/health"
	medicineHandler "github.com/medcoop/clinic-api/internal/handler/medicine"
	patientHandler "github.com/medcoop/clinic-api/internal/handler/patient"
	reportHandler "github.com/medcoop/clinic-api/internal/handler/report"
	visitHandler "github.com/medcoop/clinic-api/internal/handler/visit"
	"github.com/medcoop/clinic-api/internal/middleware"
	"github.com/medcoop/clinic-api/pkg/metrics"
)

type Config struct {
	LoginRateLimit rate.Limit
	LoginRateBurst int
}

type Router struct {
	engine    *gin.Engine
	guard     *middleware.Guard
	authH     *authHandler.Handler
	patientH  *patientHandler.Handler
	doctorH   *doctorHandler.Handler
	medicineH *medicineHandler.Handler
	visitH    *visitHandler.Handler
	reportH   *reportHandler.Handler
	healthH   *healthHandler.Handler
	metrics   *metrics.Metrics
	config    Config
}

func NewRouter(
	guard *middleware.Guard,
	authH *authHandler.Handler,
	patientH *patientHandler.Handler,
	doctorH *doctorHandler.Handler,
	medicineH *medicineHandler.Handler,
	visitH *visitHandler.Handler,
	reportH *reportHandler.Handler,
	healthH *healthHandler.Handler,
	m *metrics.Metrics,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:    engine,
		guard:     guard,
		authH:     authH,
		patientH:  patientH,
		doctorH:   doctorH,
		medicineH: medicineH,
		visitH:    visitH,
		reportH:   reportH,
		healthH:   healthH,
		metrics:   m,
		config:    config,
	}

	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Setup() {
	r.engine.GET("/", r.authH.Index)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	loginLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  r.config.LoginRateLimit,
		Burst: r.config.LoginRateBurst,
	})
	r.engine.GET("/login", r.authH.LoginPage)
	r.engine.POST("/login", loginLimiter.RateLimit(), r.authH.Login)
	r.engine.GET("/logout", r.authH.Logout)

	r.engine.GET("/dashboard",
		r.guard.Require(middleware.CapabilityAuthenticated), r.authH.Dashboard)

	api := r.engine.Group("/api")

	r.healthH.RegisterRoutes(api)

	authed := api.Group("", r.guard.Require(middleware.CapabilityAuthenticated))
	authed.GET("/visit-stats", r.authH.VisitStats)

	// Clinical records need the doctor or admin role.
	clinical := api.Group("", r.guard.Require(middleware.CapabilityDoctorOrAdmin))
	r.patientH.RegisterRoutes(clinical)
	r.medicineH.RegisterRoutes(clinical)
	r.visitH.RegisterRoutes(clinical)
	r.reportH.RegisterRoutes(clinical)

	// Managing the doctor roster is admin territory.
	admin := api.Group("", r.guard.Require(middleware.CapabilityAdminOnly))
	r.doctorH.RegisterRoutes(admin)
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		r.metrics.RequestTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		r.metrics.RequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
