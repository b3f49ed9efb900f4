package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/Dosada05/sports-league-api/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	registered []services.RegisterInput
}

func (s *stubAuthService) Register(_ context.Context, input services.RegisterInput) (*models.User, error) {
	for _, existing := range s.registered {
		if existing.Username == input.Username {
			return nil, services.ErrUserUsernameConflict
		}
	}
	s.registered = append(s.registered, input)
	return &models.User{
		ID:       len(s.registered),
		Username: input.Username,
		Email:    input.Email,
		Role:     models.RolePlayer,
	}, nil
}

func (s *stubAuthService) Login(_ context.Context, input services.LoginInput) (*models.User, error) {
	for i, existing := range s.registered {
		if existing.Username == input.Username && existing.Password == input.Password {
			return &models.User{ID: i + 1, Username: existing.Username, Email: existing.Email, Role: models.RolePlayer}, nil
		}
	}
	return nil, services.ErrAuthInvalidCredentials
}

func newAuthRouter(svc services.AuthService) *chi.Mux {
	h := NewAuthHandler(svc, "test-secret")
	router := chi.NewRouter()
	router.Post("/users/register", h.Register)
	router.Post("/users/login", h.Login)
	return router
}

func TestAuthHandler_Register_Success(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(&stubAuthService{})

	payload := `{"username": "alice", "email": "alice@example.com", "password": "secret"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "player", body["role"])
	// Ни пароль, ни хеш не должны просочиться в ответ.
	assert.NotContains(t, body, "password")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(`{"username": "bob"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error map[string]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "email")
	assert.Contains(t, body.Error, "password")

	// До сервиса запрос дойти не должен.
	assert.Empty(t, svc.registered)
}

func TestAuthHandler_Register_InvalidEmail(t *testing.T) {
	t.Parallel()

	router := newAuthRouter(&stubAuthService{})

	payload := `{"username": "carol", "email": "not-an-email", "password": "secret"}`
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error map[string]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "email")
}

func TestAuthHandler_Register_UsernameConflict(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	router := newAuthRouter(svc)

	payload := `{"username": "alice", "email": "alice@example.com", "password": "secret"}`

	first := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, first)
	require.Equal(t, http.StatusCreated, rec.Code)

	second := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(payload))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{registered: []services.RegisterInput{
		{Username: "alice", Email: "alice@example.com", Password: "secret"},
	}}
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username": "alice", "password": "secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.NotEmpty(t, body.User)

	// Неверный пароль.
	req = httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username": "alice", "password": "wrong"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
