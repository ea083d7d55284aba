package usecase

import (
	"context"
	"strings"

	"lbtui/internal/modules/auth/dto"
	authin "lbtui/internal/modules/auth/port/in"
	authout "lbtui/internal/modules/auth/port/out"
	"lbtui/internal/modules/auth/service"
	apperrors "lbtui/internal/platform/errors"
)

type Interactor struct {
	svc *service.CredentialService
	api authout.AuthAPI
}

func NewInteractor(svc *service.CredentialService, api authout.AuthAPI) authin.Usecase {
	return &Interactor{svc: svc, api: api}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return dto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	token, err := i.api.Login(ctx, username, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	cred, err := i.svc.Establish(ctx, token, username)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Username: cred.Username}, nil
}

func (i *Interactor) Signup(ctx context.Context, input dto.SignupInput) (dto.SignupOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || input.Password == "" || !strings.Contains(email, "@") {
		return dto.SignupOutput{}, apperrors.ErrInvalidInput
	}
	created, err := i.api.Signup(ctx, username, email, input.Password)
	if err != nil {
		return dto.SignupOutput{}, err
	}
	if created == "" {
		created = username
	}
	return dto.SignupOutput{Username: created}, nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Drop(ctx)
}

func (i *Interactor) Session(ctx context.Context) (dto.SessionOutput, error) {
	cred, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Username: cred.Username}, nil
}
