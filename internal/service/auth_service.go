package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
	"voiceforge/pkg/jwtutil"
)

const bcryptCost = 10

// UserStore is the persistence behavior the auth and user services need.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (model.User, error)
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error
	FindByValidResetToken(ctx context.Context, token string) (model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	CreateMembership(ctx context.Context, membership *model.UserTenant) error
}

// RefreshTokenStore persists refresh token hashes for rotation and
// revocation.
type RefreshTokenStore interface {
	Store(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	Validate(ctx context.Context, tokenHash string) (uuid.UUID, error)
	Revoke(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

// ResetMailer delivers password reset links.
type ResetMailer interface {
	SendPasswordReset(email, resetToken string) error
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	FirstName string     `json:"firstName" validate:"required"`
	LastName  string     `json:"lastName" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	TenantID  *uuid.UUID `json:"tenantId,omitempty"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries a fresh token pair plus the sanitized user.
type AuthResult struct {
	Token        string     `json:"token"`
	RefreshToken string     `json:"refreshToken"`
	User         model.User `json:"user"`
}

// AuthService implements registration, login, token refresh and the
// password reset flow.
type AuthService struct {
	users  UserStore
	tokens RefreshTokenStore
	mailer ResetMailer
}

func NewAuthService(users UserStore, tokens RefreshTokenStore, mailer ResetMailer) *AuthService {
	return &AuthService{users: users, tokens: tokens, mailer: mailer}
}

// Register creates a user and, when a tenant id is supplied, a
// member-role membership in that tenant.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResult{}, apperr.Internal("failed to hash password", err)
	}

	now := time.Now()
	user := model.User{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Role:      model.RoleMember,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return AuthResult{}, apperr.Duplicate("Email already registered")
		}
		return AuthResult{}, apperr.Internal("failed to create user", err)
	}

	if req.TenantID != nil {
		membership := model.UserTenant{
			ID:        uuid.New(),
			UserID:    user.ID,
			TenantID:  *req.TenantID,
			Role:      model.RoleMember,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.CreateMembership(ctx, &membership); err != nil && !errors.Is(err, repository.ErrDuplicateKey) {
			return AuthResult{}, apperr.Internal("failed to create membership", err)
		}
	}

	return s.issueTokens(ctx, user)
}

// Login verifies credentials. Unknown emails and wrong passwords get
// the same answer.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{}, apperr.Unauthorized("Invalid credentials")
		}
		return AuthResult{}, apperr.Internal("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return AuthResult{}, apperr.Unauthorized("Invalid credentials")
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token is checked
// against its stored hash, revoked and replaced by a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	claims, err := jwtutil.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthResult{}, apperr.Unauthorized("Invalid or expired refresh token")
	}

	hash := hashToken(refreshToken)
	userID, err := s.tokens.Validate(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{}, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return AuthResult{}, apperr.Internal("failed to validate refresh token", err)
	}
	if userID != claims.UserID {
		return AuthResult{}, apperr.Unauthorized("Invalid or expired refresh token")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AuthResult{}, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return AuthResult{}, apperr.Internal("failed to look up user", err)
	}

	if err := s.tokens.Revoke(ctx, hash); err != nil {
		return AuthResult{}, apperr.Internal("failed to revoke refresh token", err)
	}

	return s.issueTokens(ctx, user)
}

// ForgotPassword always reports success so the endpoint cannot be used
// to probe registered emails. When the user exists a reset token is
// stored and mailed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return apperr.Internal("failed to look up user", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return apperr.Internal("failed to generate reset token", err)
	}
	resetToken := hex.EncodeToString(buf)
	expires := time.Now().Add(time.Hour)

	if err := s.users.SetResetToken(ctx, user.ID, resetToken, expires); err != nil {
		return apperr.Internal("failed to store reset token", err)
	}

	if err := s.mailer.SendPasswordReset(email, resetToken); err != nil {
		return apperr.Internal("failed to send reset email", err)
	}
	return nil
}

// ResetPassword exchanges a valid reset token for a new password and
// revokes every outstanding refresh token.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.users.FindByValidResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Validation("Invalid or expired reset token")
		}
		return apperr.Internal("failed to look up reset token", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return apperr.Internal("failed to hash password", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return apperr.Internal("failed to update password", err)
	}

	if err := s.tokens.RevokeAllForUser(ctx, user.ID); err != nil {
		return apperr.Internal("failed to revoke refresh tokens", err)
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user model.User) (AuthResult, error) {
	token, err := jwtutil.GenerateToken(user.Email, user.ID, string(user.Role))
	if err != nil {
		return AuthResult{}, apperr.Internal("failed to generate token", err)
	}

	refreshToken, expiresAt, err := jwtutil.GenerateRefreshToken(user.ID)
	if err != nil {
		return AuthResult{}, apperr.Internal("failed to generate refresh token", err)
	}

	if err := s.tokens.Store(ctx, user.ID, hashToken(refreshToken), expiresAt); err != nil {
		return AuthResult{}, apperr.Internal("failed to store refresh token", err)
	}

	return AuthResult{Token: token, RefreshToken: refreshToken, User: user}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
