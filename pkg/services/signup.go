package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agrimind/landing/pkg/clients/airtable"
	"github.com/agrimind/landing/pkg/utils"
)

// ErrSignupFailed is returned when the signup sink did not acknowledge an email.
var ErrSignupFailed = errors.New("waitlist signup failed")

// Signup is the external collaborator that records a waitlist email.
type Signup interface {
	Join(ctx context.Context, email string) error
}

// SignupFunc adapts a function to the Signup interface.
type SignupFunc func(ctx context.Context, email string) error

// Join calls f.
func (f SignupFunc) Join(ctx context.Context, email string) error {
	return f(ctx, email)
}

type noopSignup struct {
	logger *zap.Logger
}

// NewNoopSignup returns a Signup that acknowledges every email without
// recording it anywhere.
func NewNoopSignup(logger *zap.Logger) Signup {
	return &noopSignup{logger: logger}
}

func (s *noopSignup) Join(_ context.Context, email string) error {
	s.logger.Info("waitlist signup (not forwarded)", zap.String("email_hash", utils.HashEmail(email)))
	return nil
}

type airtableSignup struct {
	client airtable.Client
	table  string
	logger *zap.Logger
}

// NewAirtableSignup returns a Signup that stores emails in an Airtable table.
// Emails already present (by hash) are acknowledged without a new record.
func NewAirtableSignup(client airtable.Client, table string, logger *zap.Logger) Signup {
	return &airtableSignup{
		client: client,
		table:  table,
		logger: logger,
	}
}

func (s *airtableSignup) Join(ctx context.Context, email string) error {
	hash := utils.HashEmail(email)

	exists, err := s.client.RecordExists(ctx, s.table, hash)
	if err != nil {
		return fmt.Errorf("error checking waitlist table: %w", err)
	}
	if exists {
		s.logger.Info("email already on the waitlist", zap.String("email_hash", hash))
		return nil
	}

	record := map[string]interface{}{
		"email":  email,
		"hash":   hash,
		"source": "landing",
	}
	if err := s.client.CreateRecord(ctx, s.table, record); err != nil {
		return fmt.Errorf("error creating waitlist record: %w", err)
	}

	s.logger.Info("added email to the waitlist", zap.String("email_hash", hash))
	return nil
}
