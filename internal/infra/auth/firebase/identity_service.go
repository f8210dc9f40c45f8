// Package firebase implements the identity service on top of Firebase Auth.
package firebase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type identityService struct {
	client *auth.Client
}

// NewIdentityService creates an identity service backed by Firebase Auth.
func NewIdentityService(ctx context.Context, app *firebase.App) (service.IdentityService, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &identityService{client: client}, nil
}

// VerifyIDToken validates the session token and extracts the account identity
// from its claims.
func (s *identityService) VerifyIDToken(ctx context.Context, idToken string) (*entity.Account, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	account := &entity.Account{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		account.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		account.DisplayName = name
	}

	return account, nil
}

// FetchAccount loads the full user record, including the creation timestamp
// that the token claims do not carry.
func (s *identityService) FetchAccount(ctx context.Context, uid string) (*entity.Account, error) {
	record, err := s.client.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch account %s", uid)
	}

	account := &entity.Account{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}
	if record.UserMetadata != nil {
		account.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp).UTC()
	}

	return account, nil
}
