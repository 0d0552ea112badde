package user

import (
	"context"

	"github.com/pathfinder/pkg/database"
	"github.com/pathfinder/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	CreateUser(ctx context.Context, user *entities.User) error
	FindUserByAddress(ctx context.Context, address string) (entities.User, error)
	UpdateReputation(ctx context.Context, address string, score float64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateUser(ctx context.Context, user *entities.User) error {
	return database.Translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *repository) FindUserByAddress(ctx context.Context, address string) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("address = ?", address).First(&user).Error
	return user, database.Translate(err)
}

func (r *repository) UpdateReputation(ctx context.Context, address string, score float64) error {
	res := r.db.WithContext(ctx).Model(&entities.User{}).Where("address = ?", address).Update("reputation_score", score)
	if res.Error != nil {
		return database.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound)
	}
	return nil
}
