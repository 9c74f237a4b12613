package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
)

func TestUserServiceGet(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	user := model.User{ID: uuid.New(), FirstName: "Ada", Email: "ada@acme.test"}
	users.users[user.ID] = user

	got, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.FirstName != "Ada" {
		t.Fatalf("expected Ada, got %q", got.FirstName)
	}
}

func TestUserServiceGetNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Get(context.Background(), uuid.New())
	appErr := apperr.From(err)
	if appErr == nil || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	user := model.User{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace"}
	users.users[user.ID] = user

	avatar := "https://cdn.acme.test/ada.png"
	got, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{AvatarURL: &avatar})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if got.AvatarURL != avatar {
		t.Fatalf("expected avatar set, got %q", got.AvatarURL)
	}
	if got.FirstName != "Ada" || got.LastName != "Lovelace" {
		t.Fatal("expected name untouched")
	}
}

func TestUpdateProfileNoFieldsReturnsCurrentUser(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	user := model.User{ID: uuid.New(), FirstName: "Ada"}
	users.users[user.ID] = user

	got, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if got.FirstName != "Ada" {
		t.Fatalf("expected unchanged user, got %q", got.FirstName)
	}
}
