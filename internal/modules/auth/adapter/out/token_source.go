package out

import (
	"context"
	"errors"

	authout "lbtui/internal/modules/auth/port/out"
	apperrors "lbtui/internal/platform/errors"
)

// StoreTokenSource adapts a CredentialStore to the HTTP client's token
// source. An absent credential is reported as "" so unauthenticated
// endpoints (token, signup) still work through the same client.
type StoreTokenSource struct {
	store authout.CredentialStore
}

func NewStoreTokenSource(store authout.CredentialStore) StoreTokenSource {
	return StoreTokenSource{store: store}
}

func (s StoreTokenSource) Token(ctx context.Context) (string, error) {
	cred, err := s.store.Load(ctx)
	if errors.Is(err, apperrors.ErrNoCredential) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return cred.Token, nil
}

func (s StoreTokenSource) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
