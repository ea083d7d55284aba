package in

import (
	"context"

	"lbtui/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error)
	Logout(ctx context.Context) error
	// Session is the page-entry guard: a local presence check only, no
	// network round trip. Absent credential yields apperrors.ErrNoCredential.
	Session(ctx context.Context) (dto.SessionOutput, error)
}
