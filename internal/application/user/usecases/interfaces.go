// Package usecases implements account operations: registration, password
// login, token refresh and the admin-facing role management.
package usecases

import (
	"context"

	"aula/internal/domain/user"
)

// PasswordHasher hashes and verifies login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and refreshes identity tokens carrying the role claim.
type JWTService interface {
	Generate(userUUID string, role user.Role) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

// RoleSyncer mirrors role grants into the authorization policy store so the
// admin API enforcement follows role changes without a restart.
type RoleSyncer interface {
	SyncUserRole(ctx context.Context, userUUID string, role user.Role) error
}
