package story

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/errs"
	"github.com/pathfinder/pkg/utils"
)

type Service interface {
	CreateStory(ctx context.Context, req dtos.DTOForStoryCreate) (entities.Story, error)
	ListPublished(ctx context.Context, page int) ([]entities.Story, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

func (s *service) CreateStory(ctx context.Context, req dtos.DTOForStoryCreate) (entities.Story, error) {
	story := entities.Story{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
	if err := s.repository.CreateStory(ctx, &story); err != nil {
		return entities.Story{}, err
	}
	return story, nil
}

// ListPublished returns every published story when page is 0, otherwise the
// requested page.
func (s *service) ListPublished(ctx context.Context, page int) ([]entities.Story, error) {
	var (
		stories []entities.Story
		err     error
	)
	if page == 0 {
		stories, err = s.repository.FindPublished(ctx)
	} else {
		stories, _, err = s.repository.FindPublishedPage(ctx, page)
	}

	switch {
	case err == nil:
		if stories == nil {
			stories = []entities.Story{}
		}
		return stories, nil
	case errors.Is(err, utils.ErrInvalidPage), errors.Is(err, utils.ErrPageOutOfRange):
		return nil, fmt.Errorf("%w: %w", errs.ErrValidation, err)
	default:
		return nil, err
	}
}
