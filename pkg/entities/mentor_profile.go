package entities

import (
	"time"

	"gorm.io/datatypes"
)

type MentorProfile struct {
	ID                 uint              `json:"id" gorm:"primaryKey"`
	UserID             uint              `json:"userId" gorm:"index;not null"`
	Expertise          string            `json:"expertise" gorm:"type:varchar(100);index;not null"`
	Experience         *float64          `json:"experience"`
	AvailabilityStatus bool              `json:"availabilityStatus" gorm:"not null;default:true"`
	Bio                string            `json:"bio" gorm:"type:text"`
	Preferences        datatypes.JSONMap `json:"preferences"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
