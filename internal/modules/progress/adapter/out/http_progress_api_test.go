package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	progressout "lbtui/internal/modules/progress/adapter/out"
	"lbtui/internal/platform/httpapi"
)

func newAPI(t *testing.T, handler http.HandlerFunc) *progressout.HTTPProgressAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return progressout.NewHTTPProgressAPI(httpapi.New(server.URL, time.Second, nil, nil))
}

func TestStatsToleratesNaiveTimestamps(t *testing.T) {
	t.Parallel()
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me/stats" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"xp": 120, "streak_count": 3, "last_login_date": "2026-08-30T09:15:00.123456"}`))
	})

	stats, err := api.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.XP != 120 || stats.StreakCount != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	want := time.Date(2026, 8, 30, 9, 15, 0, 123456000, time.UTC)
	if !stats.LastLogin.Equal(want) {
		t.Fatalf("expected %v, got %v", want, stats.LastLogin)
	}
}

func TestStatsDegradesUnparseableDateToZero(t *testing.T) {
	t.Parallel()
	api := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"xp": 10, "streak_count": 1, "last_login_date": "not a date"}`))
	})

	stats, err := api.Stats(context.Background())
	if err != nil {
		t.Fatalf("a bad date must not fail the fetch: %v", err)
	}
	if !stats.LastLogin.IsZero() {
		t.Fatalf("expected zero time, got %v", stats.LastLogin)
	}
}

func TestAchievementsDecodeList(t *testing.T) {
	t.Parallel()
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/achievements" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"name": "First Steps", "description": "Answer your first question", "icon_class": "fa-shoe-prints", "unlocked_at": "2026-08-29"},
			{"name": "Streak Week", "description": "Practice 7 days in a row", "icon_class": "fa-fire", "unlocked_at": "2026-08-30T08:00:00Z"}
		]`))
	})

	achievements, err := api.Achievements(context.Background())
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if len(achievements) != 2 {
		t.Fatalf("expected 2 achievements, got %d", len(achievements))
	}
	if achievements[0].UnlockedAt.IsZero() || achievements[1].UnlockedAt.IsZero() {
		t.Fatalf("both date formats must parse: %+v", achievements)
	}
}

func TestTodayQuestDecodesProgress(t *testing.T) {
	t.Parallel()
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quests/today" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"title": "Daily Five", "description": "Answer 5 questions", "current_progress": 5, "completion_target": 5, "is_completed": true}`))
	})

	quest, err := api.TodayQuest(context.Background())
	if err != nil {
		t.Fatalf("quest: %v", err)
	}
	if quest.Progress != 5 || quest.Target != 5 || !quest.Completed {
		t.Fatalf("unexpected quest: %+v", quest)
	}
}
