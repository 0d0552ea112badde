package mentor

import (
	"context"
	"errors"
	"fmt"

	"github.com/pathfinder/pkg/database"
	"github.com/pathfinder/pkg/entities"
	"github.com/pathfinder/pkg/errs"
	"gorm.io/gorm"
)

type Repository interface {
	CreateMentor(ctx context.Context, address string, profile *entities.MentorProfile) error
	FindAvailableByExpertise(ctx context.Context, expertise string) ([]entities.MentorProfile, error)
	SetAvailability(ctx context.Context, id uint, available bool) (entities.MentorProfile, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateMentor flags the user owning address as a mentor and stores the
// profile for that user in the same transaction. A profile naming another
// user is rejected.
func (r *repository) CreateMentor(ctx context.Context, address string, profile *entities.MentorProfile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner entities.User
		if err := tx.Where("address = ?", address).First(&owner).Error; err != nil {
			return err
		}
		if profile.UserID != 0 && profile.UserID != owner.ID {
			return fmt.Errorf("%w: user %d does not own address %s", errs.ErrValidation, profile.UserID, address)
		}
		profile.UserID = owner.ID

		if err := tx.Model(&owner).Update("is_mentor", true).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
	if errors.Is(err, errs.ErrValidation) {
		return err
	}
	return database.Translate(err)
}

// FindAvailableByExpertise inner joins the owning user, so a profile whose
// user is gone never reaches the matcher.
func (r *repository) FindAvailableByExpertise(ctx context.Context, expertise string) ([]entities.MentorProfile, error) {
	var profiles []entities.MentorProfile
	err := r.db.WithContext(ctx).
		InnerJoins("User").
		Where("mentor_profiles.availability_status = ? AND mentor_profiles.expertise = ?", true, expertise).
		Order("mentor_profiles.id").
		Find(&profiles).Error
	return profiles, database.Translate(err)
}

func (r *repository) SetAvailability(ctx context.Context, id uint, available bool) (entities.MentorProfile, error) {
	var profile entities.MentorProfile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.MentorProfile{}).Where("id = ?", id).Update("availability_status", available)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Preload("User").First(&profile, id).Error
	})
	if err != nil {
		return entities.MentorProfile{}, database.Translate(err)
	}
	return profile, nil
}
