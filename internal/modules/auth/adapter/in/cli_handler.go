package in

import (
	"context"

	authdto "lbtui/internal/modules/auth/dto"
	authin "lbtui/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, username, password string) (authdto.SessionOutput, error) {
	return h.usecase.Login(ctx, authdto.LoginInput{Username: username, Password: password})
}

func (h CLIHandler) Signup(ctx context.Context, username, email, password string) (authdto.SignupOutput, error) {
	return h.usecase.Signup(ctx, authdto.SignupInput{Username: username, Email: email, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Session(ctx context.Context) (authdto.SessionOutput, error) {
	return h.usecase.Session(ctx)
}
