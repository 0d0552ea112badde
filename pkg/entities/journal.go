package entities

import (
	"time"

	"gorm.io/datatypes"
)

type Journal struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	Title     string            `json:"title" gorm:"type:varchar(255);not null"`
	Content   string            `json:"content" gorm:"type:text;not null"`
	UserID    uint              `json:"userId" gorm:"index;not null"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
