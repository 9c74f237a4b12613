package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
)

// UpdateProfileRequest is the self-service profile payload. Only the
// provided fields change.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}

// UserService handles self-service profile reads and edits.
type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Get returns the user.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, apperr.NotFound("User not found")
		}
		return model.User{}, apperr.Internal("failed to get user", err)
	}
	return user, nil
}

// UpdateProfile applies the provided profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (model.User, error) {
	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	user, err := s.store.UpdateProfile(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, apperr.NotFound("User not found")
		}
		return model.User{}, apperr.Internal("failed to update profile", err)
	}
	return user, nil
}
