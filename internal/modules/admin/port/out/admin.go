package out

import (
	"context"

	"lbtui/internal/modules/admin/domain"
)

// AdminAPI is the backend's administrative surface.
type AdminAPI interface {
	// Login exchanges elevated credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	Overview(ctx context.Context) (domain.Overview, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	CreateUser(ctx context.Context, upsert domain.UserUpsert) (domain.User, error)
	UpdateUser(ctx context.Context, id int64, upsert domain.UserUpsert) (domain.User, error)
	// DeleteUser treats the backend's 204 as plain success.
	DeleteUser(ctx context.Context, id int64) error

	ListQuestions(ctx context.Context) ([]domain.Question, error)
	CreateQuestion(ctx context.Context, upsert domain.QuestionUpsert) (domain.Question, error)
	UpdateQuestion(ctx context.Context, id int64, upsert domain.QuestionUpsert) (domain.Question, error)
	DeleteQuestion(ctx context.Context, id int64) error
}
