package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
)

var (
	ErrIdentityUnavailable = errors.New("identity provider not configured")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrNotAdmin            = errors.New("identity is not on the admin allowlist")
	ErrNoSession           = errors.New("no session")
)

// Identity is the verified subject returned by the external identity
// provider. Email may be empty when the provider did not attach one.
type Identity struct {
	UID   string
	Email string
}

// IdentityVerifier wraps the external token-verification call. Implementations
// must not issue tokens; they only validate them.
type IdentityVerifier interface {
	Configured() bool
	Verify(ctx context.Context, token string) (Identity, error)
}

type AuthUseCase interface {
	// Login verifies a freshly presented ID token and applies the admin
	// allowlist. The returned token is what the session cookie should carry.
	Login(ctx context.Context, idToken string) (Identity, error)
	// VerifySession validates the token taken from the session cookie.
	VerifySession(ctx context.Context, token string) (Identity, error)
}

type authUseCaseImpl struct {
	verifier  IdentityVerifier
	allowlist []string
}

func NewAuthUseCase(verifier IdentityVerifier, adminAllowlist []string) AuthUseCase {
	return &authUseCaseImpl{
		verifier:  verifier,
		allowlist: adminAllowlist,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, idToken string) (Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return Identity{}, ErrInvalidToken
	}
	if !a.verifier.Configured() {
		return Identity{}, ErrIdentityUnavailable
	}

	id, err := a.verifier.Verify(ctx, idToken)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	// An empty allowlist admits every verified identity.
	if len(a.allowlist) > 0 {
		email := strings.ToLower(strings.TrimSpace(id.Email))
		if email == "" || !slices.Contains(a.allowlist, email) {
			return Identity{}, ErrNotAdmin
		}
	}

	return id, nil
}

func (a *authUseCaseImpl) VerifySession(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoSession
	}
	if !a.verifier.Configured() {
		return Identity{}, ErrNoSession
	}

	id, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return id, nil
}
