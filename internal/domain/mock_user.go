package domain

import "time"

// MockUser is an account created by the development registration backend.
type MockUser struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"-" gorm:"not null"`
	LastName     string    `json:"-"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (MockUser) TableName() string {
	return "mock_users"
}
