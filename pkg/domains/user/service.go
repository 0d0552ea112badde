package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pathfinder/pkg/cache"
	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/errs"
	"github.com/rs/zerolog"
)

type Service interface {
	CreateUser(ctx context.Context, req dtos.DTOForUserCreate) (entities.User, error)
	GetReputation(ctx context.Context, address string) (float64, error)
	UpdateReputation(ctx context.Context, address string, score float64) error
}

type service struct {
	repository Repository
	cache      cache.Cache
	ttl        time.Duration
	log        zerolog.Logger
}

func NewService(r Repository, c cache.Cache, ttl time.Duration, log zerolog.Logger) Service {
	if c == nil {
		c = cache.Noop{}
	}
	return &service{
		repository: r,
		cache:      c,
		ttl:        ttl,
		log:        log.With().Str("component", "user").Logger(),
	}
}

func reputationKey(address string) string {
	return "reputation:" + address
}

func (s *service) CreateUser(ctx context.Context, req dtos.DTOForUserCreate) (entities.User, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return entities.User{}, fmt.Errorf("%w: address is required", errs.ErrValidation)
	}

	user := entities.User{Address: &address}
	if err := s.repository.CreateUser(ctx, &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// GetReputation returns the stored score for address, or 0 when no user owns
// it. Cache errors are logged and bypassed.
func (s *service) GetReputation(ctx context.Context, address string) (float64, error) {
	var score float64
	found, err := s.cache.Get(ctx, reputationKey(address), &score)
	if err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("reputation cache read failed")
	} else if found {
		return score, nil
	}

	user, err := s.repository.FindUserByAddress(ctx, address)
	switch {
	case err == nil:
		score = user.ReputationScore
	case errors.Is(err, errs.ErrNotFound):
		score = 0
	default:
		return 0, err
	}

	if err := s.cache.Set(ctx, reputationKey(address), score, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("reputation cache write failed")
	}
	return score, nil
}

func (s *service) UpdateReputation(ctx context.Context, address string, score float64) error {
	if score < 0 {
		return fmt.Errorf("%w: reputation score must not be negative", errs.ErrValidation)
	}
	if err := s.repository.UpdateReputation(ctx, address, score); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, reputationKey(address)); err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("reputation cache invalidation failed")
	}
	return nil
}
