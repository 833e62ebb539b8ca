package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/habitrack/habitrack-go/internal/crypto"
	"github.com/habitrack/habitrack-go/internal/model"
	"github.com/habitrack/habitrack-go/internal/repository"
)

const testSecret = "test-secret"

type stubResolver struct {
	users map[int64]*model.User
}

func (r *stubResolver) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func newProtected(t *testing.T, resolver *stubResolver, onUser func(*model.User)) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Error("authenticated request missing user in context")
		}
		if onUser != nil {
			onUser(user)
		}
		w.WriteHeader(http.StatusOK)
	})
	return SessionAuth(testSecret, resolver)(inner)
}

func TestSessionAuth_ValidToken(t *testing.T) {
	resolver := &stubResolver{users: map[int64]*model.User{
		42: {ID: 42, Email: "a@x.com"},
	}}

	token, err := crypto.GenerateSessionToken(42, testSecret)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	var gotUser *model.User
	handler := newProtected(t, resolver, func(u *model.User) { gotUser = u })

	req := httptest.NewRequest(http.MethodGet, "/habits", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser == nil || gotUser.ID != 42 {
		t.Errorf("context user = %+v, want user 42", gotUser)
	}
}

// Every failure branch must be indistinguishable: same status, same body,
// same bearer challenge.
func TestSessionAuth_FailureBranchesAreIdentical(t *testing.T) {
	resolver := &stubResolver{users: map[int64]*model.User{
		42: {ID: 42, Email: "a@x.com"},
	}}

	validToken, err := crypto.GenerateSessionToken(42, testSecret)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	wrongSecretToken, err := crypto.GenerateSessionToken(42, "other-secret")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	unknownUserToken, err := crypto.GenerateSessionToken(7, testSecret)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "wrong secret", header: "Bearer " + wrongSecretToken},
		{name: "tampered token", header: "Bearer " + validToken[:len(validToken)-2]},
		{name: "unresolvable user", header: "Bearer " + unknownUserToken},
	}

	handler := SessionAuth(testSecret, resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler should not be called")
	}))

	var wantBody string
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/habits", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("WWW-Authenticate = %q, want %q", got, "Bearer")
			}
			if i == 0 {
				wantBody = w.Body.String()
				return
			}
			if w.Body.String() != wantBody {
				t.Errorf("body %q differs from other failure branches %q", w.Body.String(), wantBody)
			}
		})
	}
}
