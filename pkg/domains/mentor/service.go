package mentor

import (
	"context"
	"strings"

	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/entities"
	"gorm.io/datatypes"
)

type Service interface {
	Register(ctx context.Context, req dtos.DTOForMentorCreate) (entities.MentorProfile, error)
	FindMatches(ctx context.Context, req dtos.MatchRequestDTO) ([]MatchResult, error)
	SetAvailability(ctx context.Context, id uint, available bool) (entities.MentorProfile, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

func (s *service) Register(ctx context.Context, req dtos.DTOForMentorCreate) (entities.MentorProfile, error) {
	profile := entities.MentorProfile{
		UserID:             req.UserID,
		Expertise:          strings.TrimSpace(req.Expertise),
		Experience:         req.Experience,
		AvailabilityStatus: true,
		Bio:                req.Bio,
		Preferences:        datatypes.JSONMap(req.Preferences),
	}

	if err := s.repository.CreateMentor(ctx, req.Address, &profile); err != nil {
		return entities.MentorProfile{}, err
	}
	return profile, nil
}

// FindMatches loads available mentors sharing the requested expertise and
// ranks them.
func (s *service) FindMatches(ctx context.Context, req dtos.MatchRequestDTO) ([]MatchResult, error) {
	prefs := req.Preferences
	prefs.Expertise = strings.TrimSpace(prefs.Expertise)

	candidates, err := s.repository.FindAvailableByExpertise(ctx, prefs.Expertise)
	if err != nil {
		return nil, err
	}

	return Match(candidates, prefs)
}

func (s *service) SetAvailability(ctx context.Context, id uint, available bool) (entities.MentorProfile, error) {
	return s.repository.SetAvailability(ctx, id, available)
}
