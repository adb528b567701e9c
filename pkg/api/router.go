package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/agrimind/landing/pkg/assets"
	"github.com/agrimind/landing/pkg/middleware"
)

// RouterOptions configures the middleware around the handlers.
type RouterOptions struct {
	SessionTTL         time.Duration
	CookieSecure       bool
	CORSOrigins        []string
	TrustedProxies     []string
	WaitlistRatePerMin int
	WaitlistBurst      int
}

// NewRouter wires handlers, middleware and static assets. Client IPs come
// from X-Forwarded-For only when the peer is one of opts.TrustedProxies.
func NewRouter(h *Handlers, opts RouterOptions, logger *zap.Logger) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("error setting trusted proxies: %w", err)
	}
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(opts.CORSOrigins))

	router.StaticFS("/static", http.FS(assets.Static()))
	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewRateLimiter(opts.WaitlistRatePerMin, opts.WaitlistBurst)
	// Draft updates arrive per keystroke.
	draftLimiter := middleware.NewRateLimiter(opts.WaitlistRatePerMin*10, opts.WaitlistBurst*10)

	site := router.Group("/", middleware.Session(opts.SessionTTL, opts.CookieSecure))
	site.GET("/", h.LandingPage)
	site.POST("/waitlist", limiter.Middleware("waitlist_form"), h.SubmitWaitlistForm)

	waitlist := site.Group("/api/waitlist")
	waitlist.GET("", h.GetWaitlist)
	waitlist.PUT("/draft", draftLimiter.Middleware("waitlist_draft"), h.UpdateDraft)
	waitlist.POST("/submit", limiter.Middleware("waitlist_submit"), h.SubmitWaitlist)

	return router, nil
}
