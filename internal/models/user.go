package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey"`
	Username           string    `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash       string    `gorm:"not null"`
	MustChangePassword bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
}
