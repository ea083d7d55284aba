package usecase_test

import (
	"context"
	"errors"
	"testing"

	"lbtui/internal/modules/admin/domain"
	admindto "lbtui/internal/modules/admin/dto"
	adminin "lbtui/internal/modules/admin/port/in"
	"lbtui/internal/modules/admin/usecase"
	authout "lbtui/internal/modules/auth/adapter/out"
	apperrors "lbtui/internal/platform/errors"
)

type fakeAdminAPI struct {
	token    string
	loginErr error
	logins   int

	users     []domain.User
	questions []domain.Question

	createdUsers     []domain.UserUpsert
	updatedUsers     map[int64]domain.UserUpsert
	deletedUsers     []int64
	createdQuestions []domain.QuestionUpsert
	deletedQuestions []int64
}

func newFakeAdminAPI() *fakeAdminAPI {
	return &fakeAdminAPI{token: "admin-token", updatedUsers: map[int64]domain.UserUpsert{}}
}

func (f *fakeAdminAPI) Login(_ context.Context, _, _ string) (string, error) {
	f.logins++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAdminAPI) Overview(context.Context) (domain.Overview, error) {
	return domain.Overview{
		TotalUsers:            2,
		TotalQuestions:        10,
		TotalAnswersSubmitted: 55,
		QuestionsByDifficulty: map[int]int64{1: 6, 2: 4},
	}, nil
}

func (f *fakeAdminAPI) ListUsers(context.Context) ([]domain.User, error) { return f.users, nil }

func (f *fakeAdminAPI) GetUser(_ context.Context, id int64) (domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return domain.User{}, errors.New("not found")
}

func (f *fakeAdminAPI) CreateUser(_ context.Context, upsert domain.UserUpsert) (domain.User, error) {
	f.createdUsers = append(f.createdUsers, upsert)
	return domain.User{ID: 99, Username: upsert.Username, Email: upsert.Email, XP: upsert.XP, IsAdmin: upsert.IsAdmin}, nil
}

func (f *fakeAdminAPI) UpdateUser(_ context.Context, id int64, upsert domain.UserUpsert) (domain.User, error) {
	f.updatedUsers[id] = upsert
	return domain.User{ID: id, Username: upsert.Username, Email: upsert.Email, XP: upsert.XP, IsAdmin: upsert.IsAdmin}, nil
}

func (f *fakeAdminAPI) DeleteUser(_ context.Context, id int64) error {
	f.deletedUsers = append(f.deletedUsers, id)
	return nil
}

func (f *fakeAdminAPI) ListQuestions(context.Context) ([]domain.Question, error) {
	return f.questions, nil
}

func (f *fakeAdminAPI) CreateQuestion(_ context.Context, upsert domain.QuestionUpsert) (domain.Question, error) {
	f.createdQuestions = append(f.createdQuestions, upsert)
	return domain.Question{ID: 7, Text: upsert.Text, Difficulty: upsert.Difficulty, LessonID: upsert.LessonID}, nil
}

func (f *fakeAdminAPI) UpdateQuestion(_ context.Context, id int64, upsert domain.QuestionUpsert) (domain.Question, error) {
	return domain.Question{ID: id, Text: upsert.Text, Difficulty: upsert.Difficulty, LessonID: upsert.LessonID}, nil
}

func (f *fakeAdminAPI) DeleteQuestion(_ context.Context, id int64) error {
	f.deletedQuestions = append(f.deletedQuestions, id)
	return nil
}

func newInteractor(t *testing.T, api *fakeAdminAPI) adminin.Usecase {
	t.Helper()
	store := authout.NewFileCredentialStore(t.TempDir(), "admin-credential.json")
	return usecase.NewInteractor(store, api)
}

func TestAdminLoginEstablishesSeparateSession(t *testing.T) {
	t.Parallel()
	api := newFakeAdminAPI()
	uc := newInteractor(t, api)

	session, err := uc.Login(context.Background(), admindto.LoginInput{Username: "root", Password: "hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Username != "root" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if current, err := uc.Session(context.Background()); err != nil || current.Username != "root" {
		t.Fatalf("session must persist, got %+v err=%v", current, err)
	}
}

func TestAdminLoginValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()
	api := newFakeAdminAPI()
	uc := newInteractor(t, api)

	if _, err := uc.Login(context.Background(), admindto.LoginInput{Username: "  ", Password: "x"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Login(context.Background(), admindto.LoginInput{Username: "root", Password: ""}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if api.logins != 0 {
		t.Fatalf("invalid input must not reach the API")
	}
}

func TestCreateUserRequiresPassword(t *testing.T) {
	t.Parallel()
	api := newFakeAdminAPI()
	uc := newInteractor(t, api)

	input := admindto.UserInput{Username: "bob", Email: "bob@example.com", XP: 10}
	if _, err := uc.CreateUser(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("create without password must fail, got %v", err)
	}

	input.Password = "secret"
	user, err := uc.CreateUser(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID != 99 || user.Username != "bob" {
		t.Fatalf("unexpected created user: %+v", user)
	}
}

func TestUpdateUserAllowsBlankPassword(t *testing.T) {
	t.Parallel()
	api := newFakeAdminAPI()
	uc := newInteractor(t, api)

	input := admindto.UserInput{Username: "bob", Email: "bob@example.com", XP: 25, IsAdmin: true}
	user, err := uc.UpdateUser(context.Background(), 5, input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.ID != 5 || !user.IsAdmin {
		t.Fatalf("unexpected updated user: %+v", user)
	}
	if upsert, ok := api.updatedUsers[5]; !ok || upsert.Password != "" {
		t.Fatalf("blank password must pass through untouched: %+v", upsert)
	}
}

func TestQuestionValidation(t *testing.T) {
	t.Parallel()
	api := newFakeAdminAPI()
	uc := newInteractor(t, api)

	cases := []admindto.QuestionInput{
		{Text: "", CorrectAnswer: "4", Difficulty: 1, LessonID: 1},
		{Text: "2+2?", CorrectAnswer: "  ", Difficulty: 1, LessonID: 1},
		{Text: "2+2?", CorrectAnswer: "4", Difficulty: 0, LessonID: 1},
		{Text: "2+2?", CorrectAnswer: "4", Difficulty: 1, LessonID: 0},
	}
	for _, input := range cases {
		if _, err := uc.CreateQuestion(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
	if len(api.createdQuestions) != 0 {
		t.Fatalf("invalid questions must not reach the API")
	}

	question, err := uc.CreateQuestion(context.Background(), admindto.QuestionInput{Text: "2+2?", CorrectAnswer: "4", Difficulty: 1, LessonID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if question.ID != 7 {
		t.Fatalf("unexpected question: %+v", question)
	}
}

func TestDeleteRejectsBadIDs(t *testing.T) {
	t.Parallel()
	api := newFakeAdminAPI()
	uc := newInteractor(t, api)

	if err := uc.DeleteUser(context.Background(), 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := uc.DeleteQuestion(context.Background(), -3); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := uc.DeleteUser(context.Background(), 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(api.deletedUsers) != 1 || api.deletedUsers[0] != 4 {
		t.Fatalf("delete not forwarded: %v", api.deletedUsers)
	}
}

func TestOverviewMapsHistogram(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t, newFakeAdminAPI())

	overview, err := uc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.TotalUsers != 2 || overview.TotalAnswersSubmitted != 55 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
	if overview.QuestionsByDifficulty[1] != 6 || overview.QuestionsByDifficulty[2] != 4 {
		t.Fatalf("unexpected histogram: %v", overview.QuestionsByDifficulty)
	}
}
