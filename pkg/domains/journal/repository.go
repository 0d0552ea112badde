package journal

import (
	"context"

	"github.com/pathfinder/pkg/database"
	"github.com/pathfinder/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	CreateJournal(ctx context.Context, journal *entities.Journal) error
	FindByUser(ctx context.Context, userID uint) ([]entities.Journal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateJournal(ctx context.Context, journal *entities.Journal) error {
	return database.Translate(r.db.WithContext(ctx).Create(journal).Error)
}

func (r *repository) FindByUser(ctx context.Context, userID uint) ([]entities.Journal, error) {
	var journals []entities.Journal
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&journals).Error
	return journals, database.Translate(err)
}
