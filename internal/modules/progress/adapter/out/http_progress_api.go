package out

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lbtui/internal/modules/progress/domain"
	progressout "lbtui/internal/modules/progress/port/out"
	"lbtui/internal/platform/httpapi"
)

type HTTPProgressAPI struct {
	client *httpapi.Client
}

func NewHTTPProgressAPI(client *httpapi.Client) *HTTPProgressAPI {
	return &HTTPProgressAPI{client: client}
}

var _ progressout.ProgressAPI = (*HTTPProgressAPI)(nil)

func (a *HTTPProgressAPI) Stats(ctx context.Context) (domain.Stats, error) {
	var payload struct {
		XP            int64  `json:"xp"`
		StreakCount   int    `json:"streak_count"`
		LastLoginDate string `json:"last_login_date"`
	}
	if err := a.client.Do(ctx, http.MethodGet, "/users/me/stats", nil, &payload); err != nil {
		return domain.Stats{}, err
	}
	return domain.Stats{
		XP:          payload.XP,
		StreakCount: payload.StreakCount,
		LastLogin:   parseBackendTime(payload.LastLoginDate),
	}, nil
}

func (a *HTTPProgressAPI) TodayQuest(ctx context.Context) (domain.Quest, error) {
	var payload struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		CurrentProgress  int    `json:"current_progress"`
		CompletionTarget int    `json:"completion_target"`
		IsCompleted      bool   `json:"is_completed"`
	}
	if err := a.client.Do(ctx, http.MethodGet, "/quests/today", nil, &payload); err != nil {
		return domain.Quest{}, err
	}
	return domain.Quest{
		Title:       payload.Title,
		Description: payload.Description,
		Progress:    payload.CurrentProgress,
		Target:      payload.CompletionTarget,
		Completed:   payload.IsCompleted,
	}, nil
}

func (a *HTTPProgressAPI) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	var payload []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		IconClass   string `json:"icon_class"`
		UnlockedAt  string `json:"unlocked_at"`
	}
	if err := a.client.Do(ctx, http.MethodGet, "/achievements", nil, &payload); err != nil {
		return nil, err
	}
	achievements := make([]domain.Achievement, 0, len(payload))
	for _, item := range payload {
		achievements = append(achievements, domain.Achievement{
			Name:        item.Name,
			Description: item.Description,
			IconClass:   item.IconClass,
			UnlockedAt:  parseBackendTime(item.UnlockedAt),
		})
	}
	return achievements, nil
}

func (a *HTTPProgressAPI) Account(ctx context.Context) (domain.Account, error) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := a.client.Do(ctx, http.MethodGet, "/users/me", nil, &payload); err != nil {
		return domain.Account{}, err
	}
	return domain.Account{Username: payload.Username, Email: payload.Email}, nil
}

// parseBackendTime tolerates the backend's date formats. Timestamps arrive as
// RFC 3339, naive date-times, or bare dates depending on the column; an
// unparseable or empty value degrades to the zero time rather than an error.
func parseBackendTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02",
	} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
