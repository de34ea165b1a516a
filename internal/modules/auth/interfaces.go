package auth

import (
	"context"

	"societyhub/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetPassword(ctx context.Context, userID int64, passwordHash string, mustChange bool) error
	GetResetRequestByID(ctx context.Context, id int64) (*domain.PasswordResetRequest, error)
	ResolveResetRequest(ctx context.Context, id int64) error
}

type jwtService interface {
	GenerateToken(userID int64, role string, unitID *int64) (string, error)
}
