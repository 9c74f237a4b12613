package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
)

// TenantStore is the persistence behavior the tenant service needs.
type TenantStore interface {
	Create(ctx context.Context, tenant *model.Tenant) error
	FindAll(ctx context.Context) ([]model.Tenant, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.Tenant, error)
	FindActiveBySlug(ctx context.Context, slug string) (model.Tenant, error)
	Update(ctx context.Context, tenant *model.Tenant) error
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) (model.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindMembership(ctx context.Context, userID, tenantID uuid.UUID) (model.UserTenant, error)
	Register(ctx context.Context, tenant *model.Tenant, user *model.User, membership *model.UserTenant) error
}

// CreateTenantRequest is the admin create payload.
type CreateTenantRequest struct {
	Name     string `json:"name" validate:"required"`
	Slug     string `json:"slug,omitempty"`
	Settings string `json:"settings,omitempty"`
}

// UpdateTenantRequest is the admin update payload. Slug is immutable
// and deliberately absent.
type UpdateTenantRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Settings *string `json:"settings,omitempty"`
}

// RegisterTenantRequest creates a tenant together with its first admin user.
type RegisterTenantRequest struct {
	TenantName string              `json:"tenantName" validate:"required"`
	User       RegisterUserPayload `json:"user" validate:"required"`
}

type RegisterUserPayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// TenantService manages tenants, their memberships and self-service
// tenant registration.
type TenantService struct {
	store TenantStore
}

func NewTenantService(store TenantStore) *TenantService {
	return &TenantService{store: store}
}

// Slugify derives a URL-safe slug from a tenant name: lowercase,
// non-alphanumeric runs collapse to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// Register creates a tenant with its first admin user in one
// transaction. The slug derives from the tenant name unless given.
func (s *TenantService) Register(ctx context.Context, req RegisterTenantRequest) (model.Tenant, model.User, error) {
	slug := Slugify(req.TenantName)
	if slug == "" {
		return model.Tenant{}, model.User{}, apperr.Validation("tenant name must contain at least one letter or digit")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcryptCost)
	if err != nil {
		return model.Tenant{}, model.User{}, apperr.Internal("failed to hash password", err)
	}

	now := time.Now()
	tenant := model.Tenant{
		ID:        uuid.New(),
		Name:      req.TenantName,
		Slug:      slug,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := model.User{
		ID:        uuid.New(),
		FirstName: req.User.FirstName,
		LastName:  req.User.LastName,
		Email:     req.User.Email,
		Password:  string(hash),
		Role:      model.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	membership := model.UserTenant{
		ID:        uuid.New(),
		Role:      model.RoleAdmin,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Register(ctx, &tenant, &user, &membership); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return model.Tenant{}, model.User{}, apperr.Duplicate("Tenant slug or email already registered")
		}
		return model.Tenant{}, model.User{}, apperr.Internal("failed to register tenant", err)
	}

	return tenant, user, nil
}

// Create adds a tenant without a user (admin API).
func (s *TenantService) Create(ctx context.Context, req CreateTenantRequest) (model.Tenant, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		return model.Tenant{}, apperr.Validation("tenant name must contain at least one letter or digit")
	}

	now := time.Now()
	tenant := model.Tenant{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      slug,
		IsActive:  true,
		Settings:  req.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, &tenant); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return model.Tenant{}, apperr.Duplicate("Tenant slug already exists")
		}
		return model.Tenant{}, apperr.Internal("failed to create tenant", err)
	}
	return tenant, nil
}

// GetAll lists every tenant.
func (s *TenantService) GetAll(ctx context.Context) ([]model.Tenant, error) {
	tenants, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list tenants", err)
	}
	return tenants, nil
}

// GetByID returns one tenant.
func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (model.Tenant, error) {
	tenant, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Tenant{}, apperr.NotFound("Tenant not found")
		}
		return model.Tenant{}, apperr.Internal("failed to get tenant", err)
	}
	return tenant, nil
}

// Update modifies the tenant's mutable fields.
func (s *TenantService) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (model.Tenant, error) {
	tenant, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Tenant{}, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Settings != nil {
		tenant.Settings = *req.Settings
	}
	tenant.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, &tenant); err != nil {
		return model.Tenant{}, apperr.Internal("failed to update tenant", err)
	}
	return tenant, nil
}

// SetStatus soft-enables or soft-disables the tenant.
func (s *TenantService) SetStatus(ctx context.Context, id uuid.UUID, isActive bool) (model.Tenant, error) {
	tenant, err := s.store.SetActive(ctx, id, isActive)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Tenant{}, apperr.NotFound("Tenant not found")
		}
		return model.Tenant{}, apperr.Internal("failed to update tenant status", err)
	}
	return tenant, nil
}

// Delete removes the tenant.
func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Tenant not found")
		}
		return apperr.Internal("failed to delete tenant", err)
	}
	return nil
}

// ResolveContext turns a slug plus optional authenticated user into the
// tenant context gating tenant-scoped routes. Unauthenticated callers
// and callers without a membership role default to viewer.
func (s *TenantService) ResolveContext(ctx context.Context, slug string, userID *uuid.UUID) (model.TenantContext, error) {
	tenant, err := s.store.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.TenantContext{}, apperr.NotFound("Tenant not found or inactive")
		}
		return model.TenantContext{}, apperr.Internal("failed to resolve tenant", err)
	}

	tc := model.TenantContext{
		ID:   tenant.ID,
		Name: tenant.Name,
		Slug: tenant.Slug,
		Role: model.RoleViewer,
	}

	if userID != nil {
		membership, err := s.store.FindMembership(ctx, *userID, tenant.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return model.TenantContext{}, apperr.NotFound("User not found in tenant")
			}
			return model.TenantContext{}, apperr.Internal("failed to resolve tenant membership", err)
		}
		tc.Role = membership.Role
	}

	return tc, nil
}
