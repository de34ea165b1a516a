package auth

import (
	"context"
	"errors"

	"societyhub/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

type Service struct {
	users UserRepository
	jwt   jwtService
}

type LoginResult struct {
	User               *domain.User
	AccessToken        string
	MustChangePassword bool
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), user.UnitID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:               user,
		AccessToken:        token,
		MustChangePassword: user.MustChangePassword,
	}, nil
}

// SetUserPassword is the admin credential-reset operation: replaces the
// password, flags the account for a forced change on next login and,
// when a reset request id is supplied, marks that request approved.
func (s *Service) SetUserPassword(ctx context.Context, req SetPasswordRequest) error {
	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.users.SetPassword(ctx, req.UserID, string(hash), true); err != nil {
		return err
	}

	if req.ResetRequestID != nil {
		if _, err := s.users.GetResetRequestByID(ctx, *req.ResetRequestID); err != nil {
			return err
		}
		if err := s.users.ResolveResetRequest(ctx, *req.ResetRequestID); err != nil {
			return err
		}
	}

	return nil
}
