package in

import (
	"context"

	admindto "lbtui/internal/modules/admin/dto"
	adminin "lbtui/internal/modules/admin/port/in"
)

type CLIHandler struct {
	usecase adminin.Usecase
}

func NewCLIHandler(usecase adminin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, username, password string) (admindto.SessionOutput, error) {
	return h.usecase.Login(ctx, admindto.LoginInput{Username: username, Password: password})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Session(ctx context.Context) (admindto.SessionOutput, error) {
	return h.usecase.Session(ctx)
}

func (h CLIHandler) Overview(ctx context.Context) (admindto.OverviewOutput, error) {
	return h.usecase.Overview(ctx)
}

func (h CLIHandler) Users(ctx context.Context) ([]admindto.UserOutput, error) {
	return h.usecase.Users(ctx)
}

func (h CLIHandler) User(ctx context.Context, id int64) (admindto.UserOutput, error) {
	return h.usecase.User(ctx, id)
}

func (h CLIHandler) CreateUser(ctx context.Context, input admindto.UserInput) (admindto.UserOutput, error) {
	return h.usecase.CreateUser(ctx, input)
}

func (h CLIHandler) UpdateUser(ctx context.Context, id int64, input admindto.UserInput) (admindto.UserOutput, error) {
	return h.usecase.UpdateUser(ctx, id, input)
}

func (h CLIHandler) DeleteUser(ctx context.Context, id int64) error {
	return h.usecase.DeleteUser(ctx, id)
}

func (h CLIHandler) Questions(ctx context.Context) ([]admindto.QuestionOutput, error) {
	return h.usecase.Questions(ctx)
}

func (h CLIHandler) CreateQuestion(ctx context.Context, input admindto.QuestionInput) (admindto.QuestionOutput, error) {
	return h.usecase.CreateQuestion(ctx, input)
}

func (h CLIHandler) UpdateQuestion(ctx context.Context, id int64, input admindto.QuestionInput) (admindto.QuestionOutput, error) {
	return h.usecase.UpdateQuestion(ctx, id, input)
}

func (h CLIHandler) DeleteQuestion(ctx context.Context, id int64) error {
	return h.usecase.DeleteQuestion(ctx, id)
}
