// Package identity verifies externally issued identity tokens and extracts
// the claims the rest of the system relies on.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidToken = errors.New("invalid identity token")
	ErrNoEmailClaim = errors.New("identity token has no email claim")
)

// Claims is the verified claim set extracted from an identity token.
type Claims struct {
	Email string
	Name  string
}

// Verifier validates an opaque identity token against its issuer.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (Claims, error)
}
