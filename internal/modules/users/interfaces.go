package users

import (
	"context"

	"usersignup/internal/domain"
)

// UserRepositoryInterface lists the repository methods the mock backend uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.MockUser) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type jwtService interface {
	GenerateToken(userID int64, email string) (string, error)
}
