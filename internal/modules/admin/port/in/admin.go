package in

import (
	"context"

	admindto "lbtui/internal/modules/admin/dto"
)

// Usecase is the administrative surface. It rides a credential separate from
// the learner session, so both can be active at once.
type Usecase interface {
	Login(ctx context.Context, input admindto.LoginInput) (admindto.SessionOutput, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (admindto.SessionOutput, error)

	Overview(ctx context.Context) (admindto.OverviewOutput, error)

	Users(ctx context.Context) ([]admindto.UserOutput, error)
	User(ctx context.Context, id int64) (admindto.UserOutput, error)
	CreateUser(ctx context.Context, input admindto.UserInput) (admindto.UserOutput, error)
	UpdateUser(ctx context.Context, id int64, input admindto.UserInput) (admindto.UserOutput, error)
	DeleteUser(ctx context.Context, id int64) error

	Questions(ctx context.Context) ([]admindto.QuestionOutput, error)
	CreateQuestion(ctx context.Context, input admindto.QuestionInput) (admindto.QuestionOutput, error)
	UpdateQuestion(ctx context.Context, id int64, input admindto.QuestionInput) (admindto.QuestionOutput, error)
	DeleteQuestion(ctx context.Context, id int64) error
}
