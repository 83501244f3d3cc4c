package domain

import "time"

// TokenStorageKey is the durable storage key holding the bearer token.
const TokenStorageKey = "token"

// StorageEntry is one key/value pair of durable client storage.
type StorageEntry struct {
	Key       string    `json:"key" gorm:"column:storage_key;primaryKey;size:128"`
	Value     string    `json:"-" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StorageEntry) TableName() string {
	return "client_storage"
}
