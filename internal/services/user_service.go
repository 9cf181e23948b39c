package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "cofre/internal/errors"
	"cofre/internal/logger"
	"cofre/internal/models"
)

const (
	MaxFailedLogins      = 5
	LockoutDuration      = 15 * time.Minute
	DefaultResetTokenTTL = time.Hour
	MinPasswordLength    = 8
)

// userService handles user-related business logic.
type userService struct {
	db          *gorm.DB
	adminEmails map[string]bool
	resetTTL    time.Duration
	now         func() time.Time
}

// UserOption configures the user service.
type UserOption func(*userService)

// WithAdminEmails grants the admin role to accounts registered with one of emails.
func WithAdminEmails(emails ...string) UserOption {
	return func(s *userService) {
		for _, e := range emails {
			if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
				s.adminEmails[e] = true
			}
		}
	}
}

// WithResetTokenTTL sets how long a password reset token stays valid.
func WithResetTokenTTL(ttl time.Duration) UserOption {
	return func(s *userService) {
		if ttl > 0 {
			s.resetTTL = ttl
		}
	}
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, opts ...UserOption) UserServicer {
	s := &userService{
		db:          db,
		adminEmails: make(map[string]bool),
		resetTTL:    DefaultResetTokenTTL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func hashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", invalid("password must be at least 8 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(hashed), nil
}

// hashResetToken returns the SHA-256 hex digest stored in place of a reset token.
func hashResetToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

// CreateUser registers a new user
func (s *userService) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	if s.adminEmails[email] {
		role = models.RoleAdmin
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Name:     strings.TrimSpace(name),
		Role:     role,
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// GetUserByEmail retrieves an active user by email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		First(&user).Error
	if err != nil {
		return nil, recordError(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, recordError(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// AttemptLogin checks credentials and tracks failures. After MaxFailedLogins
// consecutive failures the account is locked for LockoutDuration. Unknown
// emails and wrong passwords produce the same error.
func (s *userService) AttemptLogin(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := s.now()
	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		return nil, apperrors.ErrAccountLocked
	}

	if !s.VerifyPassword(&user, password) {
		updates := map[string]any{"failed_login_attempts": user.FailedLoginAttempts + 1}
		if user.FailedLoginAttempts+1 >= MaxFailedLogins {
			updates["failed_login_attempts"] = 0
			updates["locked_until"] = now.Add(LockoutDuration)
			logger.Get().Warnw("account locked after failed logins", "user_id", user.ID)
		}
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	err = s.db.WithContext(ctx).Model(&user).Updates(map[string]any{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now
	return &user, nil
}

// StoreRefreshTokenHash saves the hash of the user's current refresh token.
// An empty hash revokes it.
func (s *userService) StoreRefreshTokenHash(ctx context.Context, userID, tokenHash string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("refresh_token_hash", tokenHash)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash.
func (s *userService) GetRefreshTokenHash(ctx context.Context, userID string) (string, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}

// RequestPasswordReset issues a single-use reset token for an active account.
// Only the token's hash is stored. For unknown or inactive emails it returns
// an empty token and no error so callers cannot enumerate accounts.
func (s *userService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	token := hex.EncodeToString(raw)

	err = s.db.WithContext(ctx).Model(user).Updates(map[string]any{
		"reset_token_hash":       hashResetToken(token),
		"reset_token_expires_at": s.now().Add(s.resetTTL),
	}).Error
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return token, nil
}

// ResetPassword replaces the password of the account holding token. The
// token is consumed, and lockout state and refresh tokens are cleared.
func (s *userService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.ErrInvalidResetToken
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("reset_token_hash = ?", hashResetToken(token)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if user.ResetTokenExpiresAt == nil || !s.now().Before(*user.ResetTokenExpiresAt) {
		return apperrors.ErrInvalidResetToken
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Model(&user).Updates(map[string]any{
		"password":               hashed,
		"reset_token_hash":       "",
		"reset_token_expires_at": nil,
		"refresh_token_hash":     "",
		"failed_login_attempts":  0,
		"locked_until":           nil,
	}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
