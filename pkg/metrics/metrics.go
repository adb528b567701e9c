package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission results used as the "result" label.
const (
	ResultAccepted = "accepted"
	ResultEmpty    = "empty"
	ResultFailed   = "failed"
)

var (
	WaitlistSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agrimind_waitlist_submissions_total",
		Help: "Waitlist submit events by result",
	}, []string{"result"})

	DraftUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agrimind_waitlist_draft_updates_total",
		Help: "Draft updates received from the enhancement script",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "agrimind_active_sessions",
		Help: "Visitor sessions currently held in memory",
	})

	PageRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agrimind_page_renders_total",
		Help: "Landing page renders",
	})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agrimind_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"route"})
)
