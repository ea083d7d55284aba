package usecase

import (
	"context"
	"strings"

	"lbtui/internal/modules/admin/domain"
	admindto "lbtui/internal/modules/admin/dto"
	adminin "lbtui/internal/modules/admin/port/in"
	adminout "lbtui/internal/modules/admin/port/out"
	authdomain "lbtui/internal/modules/auth/domain"
	authout "lbtui/internal/modules/auth/port/out"
	apperrors "lbtui/internal/platform/errors"
)

// Interactor keeps the admin credential in its own store file so an admin
// session and a learner session can coexist.
type Interactor struct {
	creds authout.CredentialStore
	api   adminout.AdminAPI
}

func NewInteractor(creds authout.CredentialStore, api adminout.AdminAPI) adminin.Usecase {
	return &Interactor{creds: creds, api: api}
}

func (i *Interactor) Login(ctx context.Context, input admindto.LoginInput) (admindto.SessionOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return admindto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	token, err := i.api.Login(ctx, username, input.Password)
	if err != nil {
		return admindto.SessionOutput{}, err
	}
	cred := authdomain.Credential{Token: token, Username: username}
	if !cred.Present() {
		return admindto.SessionOutput{}, apperrors.ErrInvalidInput
	}
	if err := i.creds.Save(ctx, cred); err != nil {
		return admindto.SessionOutput{}, err
	}
	return admindto.SessionOutput{Username: cred.Username}, nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.creds.Clear(ctx)
}

func (i *Interactor) Session(ctx context.Context) (admindto.SessionOutput, error) {
	cred, err := i.creds.Load(ctx)
	if err != nil {
		return admindto.SessionOutput{}, err
	}
	return admindto.SessionOutput{Username: cred.Username}, nil
}

func (i *Interactor) Overview(ctx context.Context) (admindto.OverviewOutput, error) {
	overview, err := i.api.Overview(ctx)
	if err != nil {
		return admindto.OverviewOutput{}, err
	}
	return admindto.OverviewOutput{
		TotalUsers:            overview.TotalUsers,
		TotalQuestions:        overview.TotalQuestions,
		TotalAnswersSubmitted: overview.TotalAnswersSubmitted,
		QuestionsByDifficulty: overview.QuestionsByDifficulty,
	}, nil
}

func (i *Interactor) Users(ctx context.Context) ([]admindto.UserOutput, error) {
	users, err := i.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]admindto.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, mapUser(user))
	}
	return outputs, nil
}

func (i *Interactor) User(ctx context.Context, id int64) (admindto.UserOutput, error) {
	if id <= 0 {
		return admindto.UserOutput{}, apperrors.ErrInvalidInput
	}
	user, err := i.api.GetUser(ctx, id)
	if err != nil {
		return admindto.UserOutput{}, err
	}
	return mapUser(user), nil
}

func (i *Interactor) CreateUser(ctx context.Context, input admindto.UserInput) (admindto.UserOutput, error) {
	upsert := userUpsert(input)
	if !upsert.Validate(true) {
		return admindto.UserOutput{}, apperrors.ErrInvalidInput
	}
	user, err := i.api.CreateUser(ctx, upsert)
	if err != nil {
		return admindto.UserOutput{}, err
	}
	return mapUser(user), nil
}

func (i *Interactor) UpdateUser(ctx context.Context, id int64, input admindto.UserInput) (admindto.UserOutput, error) {
	upsert := userUpsert(input)
	if id <= 0 || !upsert.Validate(false) {
		return admindto.UserOutput{}, apperrors.ErrInvalidInput
	}
	user, err := i.api.UpdateUser(ctx, id, upsert)
	if err != nil {
		return admindto.UserOutput{}, err
	}
	return mapUser(user), nil
}

func (i *Interactor) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrInvalidInput
	}
	return i.api.DeleteUser(ctx, id)
}

func (i *Interactor) Questions(ctx context.Context) ([]admindto.QuestionOutput, error) {
	questions, err := i.api.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]admindto.QuestionOutput, 0, len(questions))
	for _, question := range questions {
		outputs = append(outputs, mapQuestion(question))
	}
	return outputs, nil
}

func (i *Interactor) CreateQuestion(ctx context.Context, input admindto.QuestionInput) (admindto.QuestionOutput, error) {
	upsert := questionUpsert(input)
	if !upsert.Validate() {
		return admindto.QuestionOutput{}, apperrors.ErrInvalidInput
	}
	question, err := i.api.CreateQuestion(ctx, upsert)
	if err != nil {
		return admindto.QuestionOutput{}, err
	}
	return mapQuestion(question), nil
}

func (i *Interactor) UpdateQuestion(ctx context.Context, id int64, input admindto.QuestionInput) (admindto.QuestionOutput, error) {
	upsert := questionUpsert(input)
	if id <= 0 || !upsert.Validate() {
		return admindto.QuestionOutput{}, apperrors.ErrInvalidInput
	}
	question, err := i.api.UpdateQuestion(ctx, id, upsert)
	if err != nil {
		return admindto.QuestionOutput{}, err
	}
	return mapQuestion(question), nil
}

func (i *Interactor) DeleteQuestion(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrInvalidInput
	}
	return i.api.DeleteQuestion(ctx, id)
}

func userUpsert(input admindto.UserInput) domain.UserUpsert {
	return domain.UserUpsert{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		XP:       input.XP,
		IsAdmin:  input.IsAdmin,
		Password: input.Password,
	}
}

func questionUpsert(input admindto.QuestionInput) domain.QuestionUpsert {
	return domain.QuestionUpsert{
		Text:          strings.TrimSpace(input.Text),
		CorrectAnswer: strings.TrimSpace(input.CorrectAnswer),
		Difficulty:    input.Difficulty,
		LessonID:      input.LessonID,
	}
}

func mapUser(user domain.User) admindto.UserOutput {
	return admindto.UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		XP:       user.XP,
		IsAdmin:  user.IsAdmin,
	}
}

func mapQuestion(question domain.Question) admindto.QuestionOutput {
	return admindto.QuestionOutput{
		ID:         question.ID,
		Text:       question.Text,
		Difficulty: question.Difficulty,
		LessonID:   question.LessonID,
	}
}
