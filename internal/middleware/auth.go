package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/habitrack/habitrack-go/internal/crypto"
	"github.com/habitrack/habitrack-go/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// UserResolver resolves a session token's user ID to an existing user record.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// SessionAuth returns middleware that authenticates requests via a Bearer
// session token. The token is verified against the shared secret and its user
// ID resolved to a user record, which is stored in the request context.
//
// Every failure branch — missing header, malformed header, bad signature,
// missing claim, unknown user — produces the same unauthorized response, so a
// caller cannot tell which check failed.
func SessionAuth(secret string, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w)
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeUnauthorized(w)
				return
			}

			userID, err := crypto.ValidateSessionToken(token, secret)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
