package service

import (
	"context"
	"errors"

	"github.com/habitrack/habitrack-go/internal/crypto"
	"github.com/habitrack/habitrack-go/internal/identity"
	"github.com/habitrack/habitrack-go/internal/model"
	"github.com/habitrack/habitrack-go/internal/repository"
)

var ErrIDTokenRequired = errors.New("id_token is required")

// UserStore is the persistence boundary the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles login and session issuance.
type AuthService struct {
	verifier  identity.Verifier
	users     UserStore
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(verifier identity.Verifier, users UserStore, secret string) *AuthService {
	return &AuthService{
		verifier:  verifier,
		users:     users,
		jwtSecret: secret,
	}
}

// LoginWithGoogle verifies a Google ID token, finds or creates the matching
// user, and returns a session token for them. No user record is created or
// modified when verification fails.
func (s *AuthService) LoginWithGoogle(ctx context.Context, req model.GoogleLoginRequest) (model.TokenResponse, error) {
	if req.IDToken == "" {
		return model.TokenResponse{}, ErrIDTokenRequired
	}

	claims, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return model.TokenResponse{}, err
	}

	user, err := s.findOrCreateUser(ctx, claims)
	if err != nil {
		return model.TokenResponse{}, err
	}

	token, err := crypto.GenerateSessionToken(user.ID, s.jwtSecret)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// findOrCreateUser looks a user up by verified email, creating the record on
// first sight. Concurrent first logins for the same email race between lookup
// and insert; the loser of that race hits the email uniqueness constraint and
// falls back to a lookup. The display name is written once at creation and
// never updated on later logins.
func (s *AuthService) findOrCreateUser(ctx context.Context, claims identity.Claims) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user = &model.User{
		Email: claims.Email,
		Name:  claims.Name,
	}
	err = s.users.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return s.users.GetByEmail(ctx, claims.Email)
	}
	return nil, err
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}
