package model

import (
	"time"
)

type User struct {
	ID        uint64  `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Email     string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	Password  string  `gorm:"type:varchar(255);not null"`
	Avatar    *string `gorm:"type:varchar(255)"`
	PostCount int     `gorm:"column:posts;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
