package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/agrimind/landing/pkg/metrics"
	"github.com/agrimind/landing/pkg/models"
	"github.com/agrimind/landing/pkg/utils"
)

// Waitlist holds one visitor's email draft and submission flag. The hero
// and call-to-action forms both read and write the same Waitlist.
type Waitlist struct {
	mu        sync.Mutex
	draft     string
	submitted bool
}

// NewWaitlist returns an empty, unsubmitted waitlist.
func NewWaitlist() *Waitlist {
	return &Waitlist{}
}

// State returns a snapshot of the draft and flag.
func (w *Waitlist) State() models.WaitlistState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return models.WaitlistState{Draft: w.draft, Submitted: w.submitted}
}

// SetDraft replaces the draft verbatim.
func (w *Waitlist) SetDraft(text string) models.WaitlistState {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = text
	return models.WaitlistState{Draft: w.draft, Submitted: w.submitted}
}

// Submit hands the draft to signup and returns the email it handed over.
// An empty draft is ignored and returns "". When signup fails the draft and
// flag are left as they were so the visitor can retry; the attempted email
// is still returned alongside the error. Once set, the submitted flag is
// never cleared.
func (w *Waitlist) Submit(ctx context.Context, signup Signup) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	email := w.draft
	if email == "" {
		return "", nil
	}
	if err := signup.Join(ctx, email); err != nil {
		return email, fmt.Errorf("%w: %v", ErrSignupFailed, err)
	}
	w.submitted = true
	w.draft = ""
	return email, nil
}

// WaitlistService defines the session-scoped waitlist operations
type WaitlistService interface {
	State(sessionID string) models.WaitlistState
	SetDraft(sessionID, text string) models.WaitlistState
	Submit(ctx context.Context, sessionID string) (models.WaitlistState, error)
}

type waitlistServiceImpl struct {
	sessions *SessionStore
	signup   Signup
	logger   *zap.Logger
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(sessions *SessionStore, signup Signup, logger *zap.Logger) WaitlistService {
	return &waitlistServiceImpl{
		sessions: sessions,
		signup:   signup,
		logger:   logger.Named("waitlist"),
	}
}

func (s *waitlistServiceImpl) State(sessionID string) models.WaitlistState {
	return s.sessions.Waitlist(sessionID).State()
}

func (s *waitlistServiceImpl) SetDraft(sessionID, text string) models.WaitlistState {
	metrics.DraftUpdates.Inc()
	return s.sessions.Waitlist(sessionID).SetDraft(text)
}

func (s *waitlistServiceImpl) Submit(ctx context.Context, sessionID string) (models.WaitlistState, error) {
	w := s.sessions.Waitlist(sessionID)
	email, err := w.Submit(ctx, s.signup)
	switch {
	case err != nil:
		metrics.WaitlistSubmissions.WithLabelValues(metrics.ResultFailed).Inc()
		s.logger.Warn("signup failed",
			zap.String("session", sessionID),
			zap.String("email_hash", utils.HashEmail(email)),
			zap.Error(err))
	case email != "":
		metrics.WaitlistSubmissions.WithLabelValues(metrics.ResultAccepted).Inc()
		s.logger.Info("joined waitlist",
			zap.String("session", sessionID),
			zap.String("email_hash", utils.HashEmail(email)))
	default:
		metrics.WaitlistSubmissions.WithLabelValues(metrics.ResultEmpty).Inc()
		s.logger.Debug("ignored empty submit", zap.String("session", sessionID))
	}

	return w.State(), err
}
