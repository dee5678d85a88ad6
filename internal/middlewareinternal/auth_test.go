package middlewareinternal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ayanda-Mthethwa/Open-Bank-App/internal/model"
)

type authServiceStub struct {
	validateFunc func(token string) (int64, error)
}

func (s *authServiceStub) Register(context.Context, string, string, string) (*model.User, string, error) {
	return nil, "", nil
}

func (s *authServiceStub) Login(context.Context, string, string) (*model.User, string, error) {
	return nil, "", nil
}

func (s *authServiceStub) ValidateToken(token string) (int64, error) {
	return s.validateFunc(token)
}

func TestJWTAuthMiddleware(t *testing.T) {
	stub := &authServiceStub{
		validateFunc: func(token string) (int64, error) {
			if token == "good-token" {
				return 42, nil
			}
			return 0, errors.New("signature is invalid")
		},
	}

	var gotUserID int64
	var handlerCalled bool
	handler := JWTAuthMiddleware(stub)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		gotUserID, _ = GetUserIDFromContext(r.Context())
	}))

	t.Run("missing token", func(t *testing.T) {
		handlerCalled = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bank/balance", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if handlerCalled {
			t.Error("handler reached without credentials")
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		handlerCalled = false
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/bank/balance", nil)
		r.Header.Set("Authorization", "Bearer bad-token")
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if handlerCalled {
			t.Error("handler reached with invalid token")
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		handlerCalled = false
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/bank/balance", nil)
		r.Header.Set("Authorization", "good-token")
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		handlerCalled = false
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/bank/balance", nil)
		r.Header.Set("Authorization", "Bearer good-token")
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if !handlerCalled || gotUserID != 42 {
			t.Errorf("handler called=%v userID=%d, want called with 42", handlerCalled, gotUserID)
		}
	})

	t.Run("cookie fallback", func(t *testing.T) {
		handlerCalled = false
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/bank/balance", nil)
		r.AddCookie(&http.Cookie{Name: "jwt", Value: "good-token"})
		handler.ServeHTTP(w, r)
		if !handlerCalled {
			t.Error("handler not reached with cookie token")
		}
	})
}
