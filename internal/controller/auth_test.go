package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/service"
	"go.uber.org/zap"
)

type authServiceStub struct {
	registerFunc func(ctx context.Context, name, email, password string) (*model.User, string, error)
	loginFunc    func(ctx context.Context, email, password string) (*model.User, string, error)
}

func (s *authServiceStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return s.registerFunc(ctx, name, email, password)
}

func (s *authServiceStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return s.loginFunc(ctx, email, password)
}

func (s *authServiceStub) ValidateToken(string) (int64, error) {
	return 0, nil
}

func TestRegisterHandler(t *testing.T) {
	stub := &authServiceStub{
		registerFunc: func(_ context.Context, name, email, password string) (*model.User, string, error) {
			return &model.User{ID: 1, Name: name, Email: email}, "token-123", nil
		},
	}
	c := NewAuthController(stub, zap.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Alice","email":"alice@x.com","password":"pw123"}`))
	c.Register(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	var resp struct {
		Token string      `json:"token"`
		User  *model.User `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token != "token-123" {
		t.Errorf("token = %q", resp.Token)
	}
	if resp.User == nil || resp.User.Email != "alice@x.com" || resp.User.Name != "Alice" {
		t.Errorf("user = %+v", resp.User)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	c := NewAuthController(&authServiceStub{}, zap.NewNop())

	bodies := []string{
		`{"email":"alice@x.com","password":"pw123"}`,
		`{"name":"Alice","password":"pw123"}`,
		`{"name":"Alice","email":"alice@x.com"}`,
	}
	for _, body := range bodies {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		c.Register(w, r)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	stub := &authServiceStub{
		registerFunc: func(context.Context, string, string, string) (*model.User, string, error) {
			return nil, "", service.ErrUserAlreadyExists
		},
	}
	c := NewAuthController(stub, zap.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Alice","email":"alice@x.com","password":"pw123"}`))
	c.Register(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	stub := &authServiceStub{
		loginFunc: func(_ context.Context, email, password string) (*model.User, string, error) {
			if email != "alice@x.com" || password != "pw123" {
				return nil, "", service.ErrInvalidCredentials
			}
			return &model.User{ID: 1, Name: "Alice", Email: email}, "token-456", nil
		},
	}
	c := NewAuthController(stub, zap.NewNop())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@x.com","password":"pw123"}`))
	c.Login(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "token-456") {
		t.Errorf("body = %q, want token", w.Body.String())
	}

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@x.com","password":"wrong"}`))
	c.Login(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials status = %d, want 401", w.Code)
	}
}
