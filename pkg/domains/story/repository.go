package story

import (
	"context"
	"errors"

	"github.com/pathfinder/pkg/database"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/utils"
	"gorm.io/gorm"
)

type Repository interface {
	CreateStory(ctx context.Context, story *entities.Story) error
	FindPublished(ctx context.Context) ([]entities.Story, error)
	FindPublishedPage(ctx context.Context, page int) ([]entities.Story, int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateStory(ctx context.Context, story *entities.Story) error {
	return database.Translate(r.db.WithContext(ctx).Create(story).Error)
}

func (r *repository) FindPublished(ctx context.Context) ([]entities.Story, error) {
	var stories []entities.Story
	err := r.db.WithContext(ctx).Preload("User").Where("published = ?", true).Order("created_at DESC, id DESC").Find(&stories).Error
	return stories, database.Translate(err)
}

// FindPublishedPage returns one page of published stories and the page count.
// Authors are loaded after paging so the count query stays a plain count.
func (r *repository) FindPublishedPage(ctx context.Context, page int) ([]entities.Story, int, error) {
	var stories []entities.Story
	pages, err := utils.Pagination(&stories, page, r.db.Order("created_at DESC, id DESC"), ctx, "published = ?", true)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPage) || errors.Is(err, utils.ErrPageOutOfRange) {
			return nil, 0, err
		}
		return nil, 0, database.Translate(err)
	}

	if err := r.attachUsers(ctx, stories); err != nil {
		return nil, 0, err
	}
	return stories, pages, nil
}

func (r *repository) attachUsers(ctx context.Context, stories []entities.Story) error {
	if len(stories) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(stories))
	for _, story := range stories {
		ids = append(ids, story.UserID)
	}

	var users []entities.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return database.Translate(err)
	}

	byID := make(map[uint]*entities.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for i := range stories {
		stories[i].User = byID[stories[i].UserID]
	}
	return nil
}
