package model

import (
	"time"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Category    string    `gorm:"type:varchar(50);not null;default:'Uncategorized';index:idx_category" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	Thumbnail   string    `gorm:"type:varchar(255);not null" json:"thumbnail"`
	CreatorID   uint64    `gorm:"not null;index:idx_creator_id" json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
