package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agrimind/landing/pkg/content"
	"github.com/agrimind/landing/pkg/middleware"
	"github.com/agrimind/landing/pkg/models"
	"github.com/agrimind/landing/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// visitor replays the session cookie like a browser would.
type visitor struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newVisitor(t *testing.T, signup services.Signup) *visitor {
	t.Helper()
	svc := services.NewWaitlistService(services.NewSessionStore(time.Hour), signup, zap.NewNop())
	h := NewHandlers(svc, content.AgriMind(), "https://example.com/scene.splinecode", zap.NewNop())
	h.now = func() time.Time { return time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC) }

	router, err := NewRouter(h, RouterOptions{
		SessionTTL:         time.Hour,
		CORSOrigins:        []string{"*"},
		WaitlistRatePerMin: 600,
		WaitlistBurst:      100,
	}, zap.NewNop())
	require.NoError(t, err)
	return &visitor{t: t, router: router}
}

func (v *visitor) do(req *http.Request) *httptest.ResponseRecorder {
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}
	rec := httptest.NewRecorder()
	v.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			v.cookie = c
		}
	}
	return rec
}

func (v *visitor) get(path string) *httptest.ResponseRecorder {
	return v.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (v *visitor) typeDraft(text string) models.WaitlistState {
	body, err := json.Marshal(models.WaitlistForm{Email: text})
	require.NoError(v.t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/waitlist/draft", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := v.do(req)
	require.Equal(v.t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeState(v.t, rec)
}

func (v *visitor) submit() *httptest.ResponseRecorder {
	return v.do(httptest.NewRequest(http.MethodPost, "/api/waitlist/submit", nil))
}

func (v *visitor) postForm(email string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}}
	req := httptest.NewRequest(http.MethodPost, "/waitlist", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return v.do(req)
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) models.WaitlistState {
	t.Helper()
	var state models.WaitlistState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

func TestHealthCheck(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))
	rec := v.get("/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLandingPageRendersFreshSession(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))
	rec := v.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.NotNil(t, v.cookie)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `id="hero-waitlist"`)
	assert.Contains(t, body, `id="cta-waitlist"`)
	assert.Contains(t, body, "© 2030 AgriMind")
	assert.Contains(t, body, `id="waitlist-confirmation" class="mt-4 text-emerald-700 waitlist-confirmation" role="status" aria-live="polite" hidden`)
}

func TestEndToEndScenario(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))

	v.get("/")
	assert.Equal(t, models.WaitlistState{}, decodeState(t, v.get("/api/waitlist")))

	typed := ""
	for _, r := range "grower@example.com" {
		typed += string(r)
		assert.Equal(t, typed, v.typeDraft(typed).Draft)
	}
	assert.Equal(t, models.WaitlistState{Draft: "grower@example.com"}, decodeState(t, v.get("/api/waitlist")))

	rec := v.submit()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.WaitlistState{Draft: "", Submitted: true}, decodeState(t, rec))

	page := v.get("/").Body.String()
	assert.Contains(t, page, content.ConfirmationText)
	assert.NotContains(t, page, `aria-live="polite" hidden`)
	assert.NotContains(t, page, `value="grower@example.com"`)
}

func TestEmptySubmitIsNoop(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))

	rec := v.submit()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.WaitlistState{}, decodeState(t, rec))
}

func TestRepeatedSubmitHasNoFurtherEffect(t *testing.T) {
	var joined []string
	v := newVisitor(t, services.SignupFunc(func(_ context.Context, email string) error {
		joined = append(joined, email)
		return nil
	}))

	v.typeDraft("a@b.com")
	first := decodeState(t, v.submit())
	second := decodeState(t, v.submit())

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a@b.com"}, joined)
}

func TestFormPostSharesStateWithBothForms(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))

	// Typed in the hero field...
	v.get("/")
	v.typeDraft("a@b.com")
	page := v.get("/").Body.String()
	assert.Equal(t, 2, strings.Count(page, `value="a@b.com"`))

	// ...then submitted through the call-to-action form without scripting.
	rec := v.postForm("a@b.com")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#apply", rec.Header().Get("Location"))

	page = v.get("/").Body.String()
	assert.NotContains(t, page, `value="a@b.com"`)
	assert.Contains(t, page, content.ConfirmationText)
	assert.Equal(t, models.WaitlistState{Submitted: true}, decodeState(t, v.get("/api/waitlist")))
}

func TestSignupFailure(t *testing.T) {
	v := newVisitor(t, services.SignupFunc(func(context.Context, string) error {
		return errors.New("airtable unavailable")
	}))

	v.typeDraft("grower@example.com")
	rec := v.submit()
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, models.WaitlistState{Draft: "grower@example.com"}, decodeState(t, v.get("/api/waitlist")))

	rec = v.postForm("grower@example.com")
	assert.Equal(t, "/?waitlist=error#apply", rec.Header().Get("Location"))

	page := v.get("/?waitlist=error").Body.String()
	assert.Contains(t, page, content.SignupErrorText)
	assert.Contains(t, page, `id="waitlist-error" class="mt-4 text-red-600" role="alert">`)
}

func TestUpdateDraftRejectsBadJSON(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))

	req := httptest.NewRequest(http.MethodPut, "/api/waitlist/draft", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := v.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))
	v.typeDraft("mine@example.com")

	other := &visitor{t: t, router: v.router}
	assert.Equal(t, models.WaitlistState{}, decodeState(t, other.get("/api/waitlist")))
}

func TestFAQDeepLink(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))
	page := v.get("/?faq=3").Body.String()
	assert.Contains(t, page, `<details id="faq-3" class="group p-6 open:bg-gray-50" open>`)
	assert.Contains(t, page, `<details id="faq-1" class="group p-6 open:bg-gray-50">`)
}

func TestStaticAssetsAndMetrics(t *testing.T) {
	v := newVisitor(t, services.NewNoopSignup(zap.NewNop()))

	rec := v.get("/static/js/waitlist.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "preventDefault")

	rec = v.get("/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agrimind_page_renders_total")
}

func newLimitedRouter(t *testing.T, trustedProxies []string) *gin.Engine {
	t.Helper()
	svc := services.NewWaitlistService(services.NewSessionStore(time.Hour), services.NewNoopSignup(zap.NewNop()), zap.NewNop())
	h := NewHandlers(svc, content.AgriMind(), "", zap.NewNop())
	router, err := NewRouter(h, RouterOptions{
		SessionTTL:         time.Hour,
		TrustedProxies:     trustedProxies,
		WaitlistRatePerMin: 1,
		WaitlistBurst:      2,
	}, zap.NewNop())
	require.NoError(t, err)
	return router
}

func submitFrom(router *gin.Engine, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/waitlist/submit", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Forwarded-For", forwardedFor)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitIgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	router := newLimitedRouter(t, nil)

	limited := 0
	for i := 0; i < 20; i++ {
		if submitFrom(router, fmt.Sprintf("203.0.113.%d", i)) == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 18, limited)
}

func TestRateLimitHonoursForwardedForFromTrustedProxy(t *testing.T) {
	router := newLimitedRouter(t, []string{"192.0.2.1"})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, submitFrom(router, fmt.Sprintf("203.0.113.%d", i)))
	}

	assert.Equal(t, http.StatusOK, submitFrom(router, "198.51.100.7"))
	assert.Equal(t, http.StatusOK, submitFrom(router, "198.51.100.7"))
	assert.Equal(t, http.StatusTooManyRequests, submitFrom(router, "198.51.100.7"))
}

func TestNewRouterRejectsBadProxy(t *testing.T) {
	h := NewHandlers(nil, content.AgriMind(), "", zap.NewNop())
	_, err := NewRouter(h, RouterOptions{
		SessionTTL:         time.Hour,
		TrustedProxies:     []string{"not-an-ip"},
		WaitlistRatePerMin: 1,
		WaitlistBurst:      1,
	}, zap.NewNop())
	assert.Error(t, err)
}
