package repository

import (
	"context"
	"errors"
	"time"

	"usersignup/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("storage key not found")

// StorageRepository is durable key/value client storage.
type StorageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

// Set stores value under key, replacing any previous value.
func (r *StorageRepository) Set(ctx context.Context, key, value string) error {
	entry := domain.StorageEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *StorageRepository) Get(ctx context.Context, key string) (string, error) {
	var entry domain.StorageEntry
	err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (r *StorageRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&domain.StorageEntry{}).Error
}
