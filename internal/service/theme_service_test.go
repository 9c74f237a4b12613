package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
)

type fakeThemeStore struct {
	themes map[uuid.UUID]model.Theme // keyed by tenant id
}

func newFakeThemeStore() *fakeThemeStore {
	return &fakeThemeStore{themes: map[uuid.UUID]model.Theme{}}
}

func (f *fakeThemeStore) FindByTenant(_ context.Context, tenantID uuid.UUID) (model.Theme, error) {
	t, ok := f.themes[tenantID]
	if !ok {
		return model.Theme{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeThemeStore) Create(_ context.Context, theme *model.Theme) error {
	if _, ok := f.themes[theme.TenantID]; ok {
		return repository.ErrDuplicateKey
	}
	f.themes[theme.TenantID] = *theme
	return nil
}

func (f *fakeThemeStore) Update(_ context.Context, theme *model.Theme) error {
	if _, ok := f.themes[theme.TenantID]; !ok {
		return repository.ErrNotFound
	}
	f.themes[theme.TenantID] = *theme
	return nil
}

func (f *fakeThemeStore) DeleteByTenant(_ context.Context, tenantID uuid.UUID) error {
	if _, ok := f.themes[tenantID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.themes, tenantID)
	return nil
}

func upsertThemeRequest(primary string) UpsertThemeRequest {
	return UpsertThemeRequest{
		Colors: ThemeColorsPayload{
			Primary:        primary,
			PrimaryLight:   "#93c5fd",
			Secondary:      "#f97316",
			SecondaryLight: "#fdba74",
		},
		Logo: ThemeLogoPayload{Primary: "https://cdn.acme.test/logo.svg"},
	}
}

func TestThemeGetNotFound(t *testing.T) {
	svc := NewThemeService(newFakeThemeStore())

	_, err := svc.Get(context.Background(), uuid.New())
	appErr := apperr.From(err)
	if appErr == nil || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestThemeUpsertCreatesThenReplaces(t *testing.T) {
	store := newFakeThemeStore()
	svc := NewThemeService(store)
	tenantID := uuid.New()

	created, err := svc.Upsert(context.Background(), tenantID, upsertThemeRequest("#2563eb"))
	if err != nil {
		t.Fatalf("create theme: %v", err)
	}
	if created.Colors.Primary != "#2563eb" {
		t.Fatalf("expected primary #2563eb, got %q", created.Colors.Primary)
	}

	replaced, err := svc.Upsert(context.Background(), tenantID, upsertThemeRequest("#dc2626"))
	if err != nil {
		t.Fatalf("replace theme: %v", err)
	}
	if replaced.ID != created.ID {
		t.Fatal("expected upsert to keep the same row")
	}
	if replaced.Colors.Primary != "#dc2626" {
		t.Fatalf("expected primary #dc2626, got %q", replaced.Colors.Primary)
	}
	if len(store.themes) != 1 {
		t.Fatalf("expected one theme per tenant, got %d", len(store.themes))
	}
}

func TestThemeDelete(t *testing.T) {
	store := newFakeThemeStore()
	svc := NewThemeService(store)
	tenantID := uuid.New()

	if _, err := svc.Upsert(context.Background(), tenantID, upsertThemeRequest("#2563eb")); err != nil {
		t.Fatalf("create theme: %v", err)
	}
	if err := svc.Delete(context.Background(), tenantID); err != nil {
		t.Fatalf("delete theme: %v", err)
	}

	err := svc.Delete(context.Background(), tenantID)
	appErr := apperr.From(err)
	if appErr == nil || appErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestThemeIsolatedPerTenant(t *testing.T) {
	svc := NewThemeService(newFakeThemeStore())
	first, second := uuid.New(), uuid.New()

	if _, err := svc.Upsert(context.Background(), first, upsertThemeRequest("#2563eb")); err != nil {
		t.Fatalf("create first theme: %v", err)
	}
	if _, err := svc.Upsert(context.Background(), second, upsertThemeRequest("#dc2626")); err != nil {
		t.Fatalf("create second theme: %v", err)
	}

	got, err := svc.Get(context.Background(), second)
	if err != nil {
		t.Fatalf("get second theme: %v", err)
	}
	if got.Colors.Primary != "#dc2626" {
		t.Fatalf("expected the second tenant's colors, got %q", got.Colors.Primary)
	}
}
