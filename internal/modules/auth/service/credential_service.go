package service

import (
	"context"

	"lbtui/internal/modules/auth/domain"
	authout "lbtui/internal/modules/auth/port/out"
	apperrors "lbtui/internal/platform/errors"
)

// CredentialService owns the credential lifecycle around a store.
type CredentialService struct {
	store authout.CredentialStore
}

func NewCredentialService(store authout.CredentialStore) *CredentialService {
	return &CredentialService{store: store}
}

func (s *CredentialService) Establish(ctx context.Context, token, username string) (domain.Credential, error) {
	cred := domain.Credential{Token: token, Username: username}
	if !cred.Present() {
		return domain.Credential{}, apperrors.ErrInvalidInput
	}
	if err := s.store.Save(ctx, cred); err != nil {
		return domain.Credential{}, err
	}
	return cred, nil
}

func (s *CredentialService) Current(ctx context.Context) (domain.Credential, error) {
	return s.store.Load(ctx)
}

// Drop is idempotent; clearing an already-absent credential succeeds.
func (s *CredentialService) Drop(ctx context.Context) error {
	return s.store.Clear(ctx)
}
