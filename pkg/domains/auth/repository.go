package auth

import (
	"context"
	"time"

	"github.com/pathfinder/pkg/database"
	"github.com/pathfinder/pkg/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	UpsertVerificationToken(ctx context.Context, email string, tokenDigest string, expires time.Time) (entities.User, error)
	ConsumeVerificationToken(ctx context.Context, tokenDigest string, now time.Time) (entities.User, error)
	FindUserByID(ctx context.Context, id uint) (entities.User, error)
	ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// UpsertVerificationToken inserts a user for email or, when one exists,
// overwrites its token and expiry.
func (r *repository) UpsertVerificationToken(ctx context.Context, email string, tokenDigest string, expires time.Time) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := entities.User{
			Email:                    &email,
			VerificationToken:        &tokenDigest,
			VerificationTokenExpires: &expires,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"verification_token", "verification_token_expires", "updated_at"}),
		}).Create(&candidate).Error
		if err != nil {
			return err
		}
		return tx.Where("email = ?", email).First(&user).Error
	})
	if err != nil {
		return entities.User{}, database.Translate(err)
	}
	return user, nil
}

// ConsumeVerificationToken marks the owner of a live token as verified and
// clears the token. The clearing update is conditioned on the token still
// being present, so only one of several concurrent callers succeeds.
func (r *repository) ConsumeVerificationToken(ctx context.Context, tokenDigest string, now time.Time) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("verification_token = ? AND verification_token_expires > ?", tokenDigest, now).
			First(&user).Error
		if err != nil {
			return err
		}

		res := tx.Model(&entities.User{}).
			Where("id = ? AND verification_token = ?", user.ID, tokenDigest).
			Updates(map[string]any{
				"email_verified":             true,
				"verification_token":         nil,
				"verification_token_expires": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		user.EmailVerified = true
		user.VerificationToken = nil
		user.VerificationTokenExpires = nil
		return nil
	})
	if err != nil {
		return entities.User{}, database.Translate(err)
	}
	return user, nil
}

func (r *repository) FindUserByID(ctx context.Context, id uint) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, database.Translate(err)
}

// ClearExpiredTokens drops tokens whose expiry has passed and reports how many
// users were touched.
func (r *repository) ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("verification_token_expires <= ?", now).
		Updates(map[string]any{
			"verification_token":         nil,
			"verification_token_expires": nil,
		})
	return res.RowsAffected, database.Translate(res.Error)
}
