package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrimind/landing/pkg/disclosure"
	"github.com/agrimind/landing/pkg/metrics"
	"github.com/agrimind/landing/pkg/middleware"
	"github.com/agrimind/landing/pkg/models"
	"github.com/agrimind/landing/pkg/services"
	"github.com/agrimind/landing/pkg/views"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	waitlist services.WaitlistService
	content  models.PageContent
	sceneURL string
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(waitlist services.WaitlistService, content models.PageContent, sceneURL string, logger *zap.Logger) *Handlers {
	return &Handlers{
		waitlist: waitlist,
		content:  content,
		sceneURL: sceneURL,
		logger:   logger,
		now:      time.Now,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the page for the caller's session.
func (h *Handlers) LandingPage(c *gin.Context) {
	page := views.LandingPage(views.PageData{
		Content:      h.content,
		Waitlist:     h.waitlist.State(middleware.SessionID(c)),
		SignupFailed: c.Query("waitlist") == "error",
		FAQ:          disclosure.Parse(len(h.content.FAQ), c.Query("faq")),
		SceneURL:     h.sceneURL,
		Now:          h.now(),
	})

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		h.logger.Error("error rendering landing page", zap.Error(err))
		return
	}
	metrics.PageRenders.Inc()
}

// SubmitWaitlistForm handles the plain form post used when scripting is
// unavailable: store the posted value as the draft, submit, and redirect
// back to the call-to-action section.
func (h *Handlers) SubmitWaitlistForm(c *gin.Context) {
	var form models.WaitlistForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusSeeOther, "/#apply")
		return
	}

	sessionID := middleware.SessionID(c)
	h.waitlist.SetDraft(sessionID, form.Email)
	if _, err := h.waitlist.Submit(c.Request.Context(), sessionID); err != nil {
		c.Redirect(http.StatusSeeOther, "/?waitlist=error#apply")
		return
	}
	c.Redirect(http.StatusSeeOther, "/#apply")
}

// GetWaitlist returns the session's waitlist state.
func (h *Handlers) GetWaitlist(c *gin.Context) {
	c.JSON(http.StatusOK, h.waitlist.State(middleware.SessionID(c)))
}

// UpdateDraft stores the draft verbatim.
func (h *Handlers) UpdateDraft(c *gin.Context) {
	var form models.WaitlistForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	c.JSON(http.StatusOK, h.waitlist.SetDraft(middleware.SessionID(c), form.Email))
}

// SubmitWaitlist submits the stored draft. An empty draft is not an error.
func (h *Handlers) SubmitWaitlist(c *gin.Context) {
	state, err := h.waitlist.Submit(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, services.ErrSignupFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Signup failed, please try again"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, state)
}
