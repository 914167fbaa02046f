package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/medcoop/clinic-api/internal/counter"
	"github.com/medcoop/clinic-api/internal/repository"
	"github.com/medcoop/clinic-api/internal/session"
	"github.com/medcoop/clinic-api/pkg/errors"
	"github.com/medcoop/clinic-api/pkg/security"
)

type Service interface {
	// Login verifies the credentials against an active user and opens a
	// session. Every attempt bumps exactly one of the login counters.
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	users    repository.UserRepository
	sessions session.Store
	counters counter.Service
	hasher   security.PasswordHasher
}

func NewService(users repository.UserRepository, sessions session.Store,
	counters counter.Service, hasher security.PasswordHasher) Service {
	return &service{
		users:    users,
		sessions: sessions,
		counters: counters,
		hasher:   hasher,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*session.Session, error) {
	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		s.bump(ctx, counter.FailedLogins)
		// Same generic error as a bad password so callers cannot probe
		// which usernames exist.
		return nil, errors.Unauthorized(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.bump(ctx, counter.FailedLogins)
		return nil, errors.Unauthorized(err)
	}

	s.bump(ctx, counter.SuccessfulLogins)

	sess, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return sess, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

// bump increments a login counter. Counter failures are logged but never
// block authentication.
func (s *service) bump(ctx context.Context, name string) {
	if _, err := s.counters.Incr(ctx, name); err != nil {
		log.Error().Err(err).Str("counter", name).Msg("failed to increment login counter")
	}
}
