package journal

import (
	"context"

	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/entities"
	"gorm.io/datatypes"
)

type Service interface {
	CreateJournal(ctx context.Context, req dtos.DTOForJournalCreate) (entities.Journal, error)
	ListByUser(ctx context.Context, userID uint) ([]entities.Journal, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

func (s *service) CreateJournal(ctx context.Context, req dtos.DTOForJournalCreate) (entities.Journal, error) {
	journal := entities.Journal{
		Title:    req.Title,
		Content:  req.Content,
		UserID:   req.UserID,
		Metadata: datatypes.JSONMap(req.Metadata),
	}
	if err := s.repository.CreateJournal(ctx, &journal); err != nil {
		return entities.Journal{}, err
	}
	return journal, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]entities.Journal, error) {
	journals, err := s.repository.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if journals == nil {
		journals = []entities.Journal{}
	}
	return journals, nil
}
