package out

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"lbtui/internal/modules/admin/domain"
	adminout "lbtui/internal/modules/admin/port/out"
	"lbtui/internal/platform/httpapi"
)

type HTTPAdminAPI struct {
	client *httpapi.Client
}

func NewHTTPAdminAPI(client *httpapi.Client) *HTTPAdminAPI {
	return &HTTPAdminAPI{client: client}
}

var _ adminout.AdminAPI = (*HTTPAdminAPI)(nil)

type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	XP       int64  `json:"xp"`
	IsAdmin  bool   `json:"is_admin"`
}

type questionPayload struct {
	ID              int64  `json:"id"`
	QuestionText    string `json:"question_text"`
	DifficultyLevel int    `json:"difficulty_level"`
	LessonID        int64  `json:"lesson_id"`
}

func (a *HTTPAdminAPI) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := a.client.PostForm(ctx, "/admin/token", form, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (a *HTTPAdminAPI) Overview(ctx context.Context) (domain.Overview, error) {
	var payload struct {
		TotalUsers            int64            `json:"total_users"`
		TotalQuestions        int64            `json:"total_questions"`
		TotalAnswersSubmitted int64            `json:"total_answers_submitted"`
		QuestionsByDifficulty map[string]int64 `json:"questions_by_difficulty"`
	}
	if err := a.client.Do(ctx, http.MethodGet, "/admin/stats", nil, &payload); err != nil {
		return domain.Overview{}, err
	}
	// The histogram arrives keyed by the difficulty level as a JSON string.
	byDifficulty := make(map[int]int64, len(payload.QuestionsByDifficulty))
	for key, count := range payload.QuestionsByDifficulty {
		level, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		byDifficulty[level] = count
	}
	return domain.Overview{
		TotalUsers:            payload.TotalUsers,
		TotalQuestions:        payload.TotalQuestions,
		TotalAnswersSubmitted: payload.TotalAnswersSubmitted,
		QuestionsByDifficulty: byDifficulty,
	}, nil
}

func (a *HTTPAdminAPI) ListUsers(ctx context.Context) ([]domain.User, error) {
	var payload []userPayload
	if err := a.client.Do(ctx, http.MethodGet, "/admin/users", nil, &payload); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(payload))
	for _, item := range payload {
		users = append(users, userFromPayload(item))
	}
	return users, nil
}

func (a *HTTPAdminAPI) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var payload userPayload
	if err := a.client.Do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, &payload); err != nil {
		return domain.User{}, err
	}
	return userFromPayload(payload), nil
}

func (a *HTTPAdminAPI) CreateUser(ctx context.Context, upsert domain.UserUpsert) (domain.User, error) {
	var payload userPayload
	if err := a.client.Do(ctx, http.MethodPost, "/admin/users", userBody(upsert), &payload); err != nil {
		return domain.User{}, err
	}
	return userFromPayload(payload), nil
}

func (a *HTTPAdminAPI) UpdateUser(ctx context.Context, id int64, upsert domain.UserUpsert) (domain.User, error) {
	var payload userPayload
	if err := a.client.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", id), userBody(upsert), &payload); err != nil {
		return domain.User{}, err
	}
	return userFromPayload(payload), nil
}

func (a *HTTPAdminAPI) DeleteUser(ctx context.Context, id int64) error {
	return a.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

func (a *HTTPAdminAPI) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	var payload []questionPayload
	if err := a.client.Do(ctx, http.MethodGet, "/admin/questions", nil, &payload); err != nil {
		return nil, err
	}
	questions := make([]domain.Question, 0, len(payload))
	for _, item := range payload {
		questions = append(questions, questionFromPayload(item))
	}
	return questions, nil
}

func (a *HTTPAdminAPI) CreateQuestion(ctx context.Context, upsert domain.QuestionUpsert) (domain.Question, error) {
	var payload questionPayload
	if err := a.client.Do(ctx, http.MethodPost, "/admin/questions", questionBody(upsert), &payload); err != nil {
		return domain.Question{}, err
	}
	return questionFromPayload(payload), nil
}

func (a *HTTPAdminAPI) UpdateQuestion(ctx context.Context, id int64, upsert domain.QuestionUpsert) (domain.Question, error) {
	var payload questionPayload
	if err := a.client.Do(ctx, http.MethodPut, fmt.Sprintf("/admin/questions/%d", id), questionBody(upsert), &payload); err != nil {
		return domain.Question{}, err
	}
	return questionFromPayload(payload), nil
}

func (a *HTTPAdminAPI) DeleteQuestion(ctx context.Context, id int64) error {
	return a.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/admin/questions/%d", id), nil, nil)
}

// userBody omits password entirely when blank so an update keeps the current
// password instead of overwriting it with "".
func userBody(upsert domain.UserUpsert) map[string]any {
	body := map[string]any{
		"username": upsert.Username,
		"email":    upsert.Email,
		"xp":       upsert.XP,
		"is_admin": upsert.IsAdmin,
	}
	if upsert.Password != "" {
		body["password"] = upsert.Password
	}
	return body
}

func questionBody(upsert domain.QuestionUpsert) map[string]any {
	return map[string]any{
		"question_text":       upsert.Text,
		"correct_answer_text": upsert.CorrectAnswer,
		"difficulty_level":    upsert.Difficulty,
		"lesson_id":           upsert.LessonID,
	}
}

func userFromPayload(payload userPayload) domain.User {
	return domain.User{
		ID:       payload.ID,
		Username: payload.Username,
		Email:    payload.Email,
		XP:       payload.XP,
		IsAdmin:  payload.IsAdmin,
	}
}

func questionFromPayload(payload questionPayload) domain.Question {
	return domain.Question{
		ID:         payload.ID,
		Text:       payload.QuestionText,
		Difficulty: payload.DifficultyLevel,
		LessonID:   payload.LessonID,
	}
}
