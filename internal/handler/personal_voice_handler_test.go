package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
	"voiceforge/internal/service"
)

type memoryVoiceStore struct {
	voices map[uuid.UUID]model.PersonalVoice
}

func newMemoryVoiceStore() *memoryVoiceStore {
	return &memoryVoiceStore{voices: map[uuid.UUID]model.PersonalVoice{}}
}

func (m *memoryVoiceStore) FindAll(_ context.Context, tenantID uuid.UUID) ([]model.PersonalVoice, error) {
	var out []model.PersonalVoice
	for _, v := range m.voices {
		if v.TenantID == tenantID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memoryVoiceStore) FindByID(_ context.Context, id, tenantID uuid.UUID) (model.PersonalVoice, error) {
	v, ok := m.voices[id]
	if !ok || v.TenantID != tenantID {
		return model.PersonalVoice{}, repository.ErrNotFound
	}
	return v, nil
}

func (m *memoryVoiceStore) FindByKey(_ context.Context, key string, tenantID uuid.UUID) (model.PersonalVoice, error) {
	for _, v := range m.voices {
		if v.Key == key && v.TenantID == tenantID {
			return v, nil
		}
	}
	return model.PersonalVoice{}, repository.ErrNotFound
}

func (m *memoryVoiceStore) Create(_ context.Context, voice *model.PersonalVoice) error {
	for _, v := range m.voices {
		if v.TenantID == voice.TenantID && v.Key == voice.Key {
			return repository.ErrDuplicateKey
		}
	}
	m.voices[voice.ID] = *voice
	return nil
}

func (m *memoryVoiceStore) Update(_ context.Context, voice *model.PersonalVoice) error {
	m.voices[voice.ID] = *voice
	return nil
}

func (m *memoryVoiceStore) Delete(_ context.Context, id, tenantID uuid.UUID) error {
	v, ok := m.voices[id]
	if !ok || v.TenantID != tenantID {
		return repository.ErrNotFound
	}
	delete(m.voices, id)
	return nil
}

// newVoiceApp wires a minimal echo app around the voice handler with a
// pre-resolved tenant context, mirroring the production route setup.
func newVoiceApp(store *memoryVoiceStore, tenantID uuid.UUID) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = apperr.ErrorHandler()

	h := NewPersonalVoiceHandler(service.NewPersonalVoiceService(store))

	withTenant := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("tenant", model.TenantContext{ID: tenantID, Slug: "acme", Role: model.RoleMember})
			return next(c)
		}
	}

	g := e.Group("/api/personal-voices", withTenant)
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/id/:id", h.GetByID)
	g.GET("/key/:key", h.GetByKey)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return e
}

const createVoiceBody = `{
	"key": "personal-voice-1",
	"name": "Personal Voice - Engineer",
	"profile": {"jobTitle": "Engineer", "geographicalFocus": "Europe", "skillsAndExpertise": ["Go"]},
	"toneOfVoice": {"writingSample": "Sample", "toneOfVoiceAttributes": ["Friendly"]},
	"audience": {"audienceDemographics": ["Developers"]},
	"fineTuning": {"temperature": 0.7, "engagementStyle": "Informative", "useEmojis": false, "translate": false, "translateTo": ""}
}`

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndListVoices(t *testing.T) {
	e := newVoiceApp(newMemoryVoiceStore(), uuid.New())

	rec := doJSON(e, http.MethodPost, "/api/personal-voices", createVoiceBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created model.PersonalVoice
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created voice: %v", err)
	}
	if created.Key != "personal-voice-1" {
		t.Fatalf("expected key personal-voice-1, got %q", created.Key)
	}

	rec = doJSON(e, http.MethodGet, "/api/personal-voices", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []model.PersonalVoice
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one voice, got %d", len(list))
	}
}

func TestCreateVoiceValidation(t *testing.T) {
	e := newVoiceApp(newMemoryVoiceStore(), uuid.New())

	rec := doJSON(e, http.MethodPost, "/api/personal-voices", `{"key": "k"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] != "ValidationError" {
		t.Fatalf("expected ValidationError, got %v", body["error"])
	}
}

func TestCreateVoiceDuplicateKeyReturns409(t *testing.T) {
	e := newVoiceApp(newMemoryVoiceStore(), uuid.New())

	if rec := doJSON(e, http.MethodPost, "/api/personal-voices", createVoiceBody); rec.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/api/personal-voices", createVoiceBody)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] != "DuplicateKeyError" {
		t.Fatalf("expected DuplicateKeyError, got %v", body["error"])
	}
}

func TestDeleteMissingVoiceReturns404(t *testing.T) {
	e := newVoiceApp(newMemoryVoiceStore(), uuid.New())

	rec := doJSON(e, http.MethodDelete, "/api/personal-voices/"+uuid.NewString(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] != "ResourceNotFoundError" {
		t.Fatalf("expected ResourceNotFoundError, got %v", body["error"])
	}
}

func TestDeleteVoiceReturns204(t *testing.T) {
	store := newMemoryVoiceStore()
	tenantID := uuid.New()
	e := newVoiceApp(store, tenantID)

	rec := doJSON(e, http.MethodPost, "/api/personal-voices", createVoiceBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}
	var created model.PersonalVoice
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created voice: %v", err)
	}

	rec = doJSON(e, http.MethodDelete, "/api/personal-voices/"+created.ID.String(), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(store.voices) != 0 {
		t.Fatal("expected the voice to be gone")
	}
}

func TestGetVoiceByIDInvalidUUID(t *testing.T) {
	e := newVoiceApp(newMemoryVoiceStore(), uuid.New())

	rec := doJSON(e, http.MethodGet, "/api/personal-voices/id/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetVoiceByKey(t *testing.T) {
	e := newVoiceApp(newMemoryVoiceStore(), uuid.New())

	if rec := doJSON(e, http.MethodPost, "/api/personal-voices", createVoiceBody); rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}

	rec := doJSON(e, http.MethodGet, "/api/personal-voices/key/personal-voice-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestVoicesScopedToTenant(t *testing.T) {
	store := newMemoryVoiceStore()
	first := newVoiceApp(store, uuid.New())
	second := newVoiceApp(store, uuid.New())

	if rec := doJSON(first, http.MethodPost, "/api/personal-voices", createVoiceBody); rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rec.Code)
	}

	rec := doJSON(second, http.MethodGet, "/api/personal-voices", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		var list []model.PersonalVoice
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("decode list: %v", err)
		}
		if len(list) != 0 {
			t.Fatalf("expected the other tenant to see nothing, got %d voices", len(list))
		}
	}
}
