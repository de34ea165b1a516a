package repository

import (
	"context"
	"strings"
	"time"

	"societyhub/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).First(&u, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// SetPassword replaces the credential and flags the account so the next
// login forces a password change.
func (r *UserRepository) SetPassword(ctx context.Context, userID int64, passwordHash string, mustChange bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_hash":        passwordHash,
			"must_change_password": mustChange,
			"updated_at":           time.Now(),
		}).Error
}

// -------------------- Password reset requests --------------------

func (r *UserRepository) GetResetRequestByID(ctx context.Context, id int64) (*domain.PasswordResetRequest, error) {
	var req domain.PasswordResetRequest
	tx := r.db.WithContext(ctx).First(&req, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &req, nil
}

func (r *UserRepository) ResolveResetRequest(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.PasswordResetRequest{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      domain.ResetApproved,
			"resolved_at": now,
		}).Error
}
