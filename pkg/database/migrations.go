package database

import (
	"github.com/pathfinder/pkg/entities"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.MentorProfile{},
		&entities.Story{},
		&entities.Journal{},
	)
}
