package repository

import (
	"context"
	"strings"

	"usersignup/internal/domain"

	"gorm.io/gorm"
)

// MockUserRepository stores accounts of the development registration backend.
type MockUserRepository struct {
	db *gorm.DB
}

func NewMockUserRepository(db *gorm.DB) *MockUserRepository {
	return &MockUserRepository{db: db}
}

func (r *MockUserRepository) Create(ctx context.Context, u *domain.MockUser) error {
	u.Email = normalizeEmail(u.Email)
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MockUser{}).
		Where("LOWER(email) = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.MockUser, error) {
	var u domain.MockUser
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", normalizeEmail(email)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
