// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"

	"lifeline/internal/domain/entity"
)

// IdentityService is the authentication collaborator. It verifies session
// tokens issued by the managed identity provider and resolves account
// metadata such as the creation time.
type IdentityService interface {
	// VerifyIDToken validates a session ID token and returns the account it
	// belongs to (UID and email, taken from the token claims).
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Account, error)

	// FetchAccount loads the full account record for a UID, including the
	// display name and account creation time.
	FetchAccount(ctx context.Context, uid string) (*entity.Account, error)
}
