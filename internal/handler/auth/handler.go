package auth

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/medcoop/clinic-api/internal/counter"
	"github.com/medcoop/clinic-api/internal/handler"
	"github.com/medcoop/clinic-api/internal/middleware"
	"github.com/medcoop/clinic-api/internal/model"
	authService "github.com/medcoop/clinic-api/internal/service/auth"
	pkgauth "github.com/medcoop/clinic-api/pkg/auth"
	"github.com/medcoop/clinic-api/pkg/metrics"
)

// CookieConfig describes the session cookie the handler issues.
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

type Handler struct {
	service  authService.Service
	signer   pkgauth.TokenSigner
	counters counter.Service
	guard    *middleware.Guard
	cookie   CookieConfig
	metrics  *metrics.Metrics
}

func NewHandler(service authService.Service, signer pkgauth.TokenSigner,
	counters counter.Service, guard *middleware.Guard, cookie CookieConfig,
	m *metrics.Metrics) *Handler {
	return &Handler{
		service:  service,
		signer:   signer,
		counters: counters,
		guard:    guard,
		cookie:   cookie,
		metrics:  m,
	}
}

// Index is the anonymous landing page. Every hit bumps the page-visit
// counter; logged-in users are sent straight to the dashboard.
func (h *Handler) Index(c *gin.Context) {
	if sess := h.guard.Resolve(c); sess != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	count, err := h.counters.Incr(c.Request.Context(), counter.PageVisits)
	if err != nil {
		log.Error().Err(err).Msg("failed to increment page visit counter")
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"message":     "welcome to the medical cooperative",
		"visit_count": count,
	}))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape("username and password are required"))
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		// Deliberately generic: do not reveal whether the username exists.
		c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape("invalid username or password"))
		return
	}
	h.metrics.LoginAttempts.WithLabelValues("success").Inc()

	token, err := h.signer.Sign(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("internal server error"))
		return
	}

	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	if sess := h.guard.Resolve(c); sess != nil {
		if err := h.service.Logout(c.Request.Context(), sess.ID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage exists so failed-login redirects land on a real route; the UI
// rendering itself lives outside this service.
func (h *Handler) LoginPage(c *gin.Context) {
	resp := handler.NewMessageResponse("please log in")
	if reason := c.Query("error"); reason != "" {
		resp = handler.NewErrorResponse(reason)
	}
	c.JSON(http.StatusOK, resp)
}

// Dashboard is the default authenticated landing page.
func (h *Handler) Dashboard(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"username": sess.Username,
		"role":     sess.Role,
		"name":     sess.Name,
	}))
}

// VisitStats reports the landing-page visit counter.
func (h *Handler) VisitStats(c *gin.Context) {
	total, err := h.counters.Get(c.Request.Context(), counter.PageVisits)
	if err != nil {
		c.JSON(http.StatusInternalServerError, handler.NewErrorResponse("failed to read visit counter"))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"total_visits": total}))
}
