package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pathfinder/pkg/config"
	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/errs"
	"github.com/pathfinder/pkg/utils"
	"github.com/rs/zerolog"
)

const (
	// VerificationTTL is how long an issued token stays valid.
	VerificationTTL = 24 * time.Hour

	sendTimeout = 30 * time.Second
)

// Notifier delivers a verification token to its owner.
type Notifier interface {
	SendVerification(ctx context.Context, address string, token string) error
}

type Service interface {
	IssueVerificationToken(ctx context.Context, email string) (string, error)
	VerifyEmail(ctx context.Context, token string) (dtos.VerifiedIdentityDTO, string, error)
	CurrentUser(ctx context.Context, id uint) (entities.User, error)
	// Wait blocks until pending notification sends have finished.
	Wait()
}

type Option func(*service)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repository Repository
	notifier   Notifier
	log        zerolog.Logger
	jwtSecret  []byte
	sessionTTL time.Duration
	now        func() time.Time
	pending    sync.WaitGroup
}

func NewService(r Repository, n Notifier, log zerolog.Logger, jwtc config.JWT, opts ...Option) Service {
	s := &service{
		repository: r,
		notifier:   n,
		log:        log.With().Str("component", "auth").Logger(),
		jwtSecret:  []byte(jwtc.Secret),
		sessionTTL: jwtc.TTL,
		now:        time.Now,
	}
	if s.sessionTTL <= 0 {
		s.sessionTTL = 24 * time.Hour
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IssueVerificationToken stores a fresh token for email, replacing any
// previous one, and hands it to the notifier in the background. A failed send
// is logged; it does not fail the call.
func (s *service) IssueVerificationToken(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateToken()
	if err != nil {
		return "", fmt.Errorf("generate verification token: %w", err)
	}
	expires := s.now().UTC().Add(VerificationTTL)

	user, err := s.repository.UpsertVerificationToken(ctx, email, utils.HashToken(token), expires)
	if err != nil {
		return "", err
	}
	s.log.Info().Uint("user_id", user.ID).Time("expires", expires).Msg("verification token issued")

	s.notify(ctx, email, token)
	return token, nil
}

func (s *service) notify(ctx context.Context, email string, token string) {
	if s.notifier == nil {
		s.log.Warn().Str("email", email).Msg("no notifier configured, verification email not sent")
		return
	}

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
		defer cancel()

		if err := s.notifier.SendVerification(sendCtx, email, token); err != nil {
			s.log.Error().Err(err).Str("email", email).Msg("failed to send verification email")
			return
		}
		s.log.Debug().Str("email", email).Msg("verification email sent")
	}()
}

// VerifyEmail consumes token. Unknown and expired tokens fail the same way.
// On success it returns the verified identity and a signed session token.
func (s *service) VerifyEmail(ctx context.Context, token string) (dtos.VerifiedIdentityDTO, string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return dtos.VerifiedIdentityDTO{}, "", errs.ErrInvalidOrExpiredToken
	}

	user, err := s.repository.ConsumeVerificationToken(ctx, utils.HashToken(token), s.now().UTC())
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return dtos.VerifiedIdentityDTO{}, "", errs.ErrInvalidOrExpiredToken
		}
		return dtos.VerifiedIdentityDTO{}, "", err
	}

	identity := dtos.VerifiedIdentityDTO{UserID: user.ID}
	if user.Email != nil {
		identity.Email = *user.Email
	}
	s.log.Info().Uint("user_id", user.ID).Msg("email verified")

	session, err := s.sessionToken(identity)
	if err != nil {
		// the verification itself is already committed
		s.log.Error().Err(err).Uint("user_id", user.ID).Msg("failed to sign session token")
		return identity, "", nil
	}
	return identity, session, nil
}

func (s *service) sessionToken(identity dtos.VerifiedIdentityDTO) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", nil
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    identity.UserID,
		"email": identity.Email,
		"exp":   s.now().Add(s.sessionTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

func (s *service) CurrentUser(ctx context.Context, id uint) (entities.User, error) {
	return s.repository.FindUserByID(ctx, id)
}

func (s *service) Wait() {
	s.pending.Wait()
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", errs.ErrValidation)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email address", errs.ErrValidation)
	}
	return email, nil
}
