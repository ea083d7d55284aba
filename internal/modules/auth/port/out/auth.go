package out

import (
	"context"

	"lbtui/internal/modules/auth/domain"
)

// CredentialStore persists one credential across process runs. Save and
// Clear are atomic from the caller's perspective: a reader never observes
// a token without a username or vice versa.
type CredentialStore interface {
	Save(ctx context.Context, cred domain.Credential) error
	Load(ctx context.Context) (domain.Credential, error)
	Clear(ctx context.Context) error
}

type AuthAPI interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	Signup(ctx context.Context, username, email, password string) (createdUsername string, err error)
}
