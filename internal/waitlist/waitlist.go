// Package waitlist validates waitlist signups and registers them in a Notion
// database when one is configured.
package waitlist

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	// ErrMissingFields is returned when name or email is empty.
	ErrMissingFields = errors.New("name and email are required")
	// ErrInvalidEmail is returned when the email does not look like an
	// address.
	ErrInvalidEmail = errors.New("invalid email format")
)

// Submission is one waitlist signup.
type Submission struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks a submission. Validation errors are the only errors a
// caller ever sees from this package.
func Validate(s Submission) error {
	if s.Name == "" || s.Email == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(s.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Registrar records a validated submission in an external system.
type Registrar interface {
	Register(ctx context.Context, s Submission) error
}

// Service accepts submissions. A nil registrar means signups are only logged,
// which is the intended behavior when no credential is configured.
type Service struct {
	registrar Registrar
}

// NewService creates a Service. registrar may be nil.
func NewService(registrar Registrar) *Service {
	return &Service{registrar: registrar}
}

// Submit validates and registers one signup. A registrar failure after
// successful validation is swallowed: the signup is lost downstream but the
// caller still gets success, since a backend outage is nothing the user can
// act on.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if err := Validate(sub); err != nil {
		return err
	}

	if s.registrar == nil {
		slog.Info("waitlist signup (no registrar configured)", "name", sub.Name, "email", sub.Email)
		return nil
	}

	if err := s.registrar.Register(ctx, sub); err != nil {
		slog.Error("waitlist registration failed", "email", sub.Email, "error", err)
		return nil
	}

	slog.Info("waitlist signup registered", "email", sub.Email)
	return nil
}
