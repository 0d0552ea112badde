package entities

import (
	"time"
)

// User is keyed either by a wallet address or by an email; both are optional
// and unique when present.
type User struct {
	ID                       uint       `json:"id" gorm:"primaryKey"`
	Address                  *string    `json:"address" gorm:"type:varchar(255);uniqueIndex"`
	Email                    *string    `json:"email" gorm:"type:varchar(255);uniqueIndex"`
	ReputationScore          float64    `json:"reputationScore" gorm:"not null;default:0"`
	IsMentor                 bool       `json:"isMentor" gorm:"not null;default:false"`
	EmailVerified            bool       `json:"emailVerified" gorm:"not null;default:false"`
	VerificationToken        *string    `json:"-" gorm:"type:varchar(128);index"`
	VerificationTokenExpires *time.Time `json:"-"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                time.Time  `json:"updatedAt"`
}
