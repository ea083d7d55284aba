package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	practiceout "lbtui/internal/modules/practice/adapter/out"
	"lbtui/internal/modules/practice/domain"
)

func TestHistoryRecordAndRecentOrdering(t *testing.T) {
	t.Parallel()
	store, err := practiceout.NewSQLiteHistoryStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, turn := range []domain.Turn{
		{ID: "a", QuestionID: 1, QuestionText: "first", Difficulty: 1, Answer: "x", Correct: false, Similarity: 0.2},
		{ID: "b", QuestionID: 2, QuestionText: "second", Difficulty: 2, Answer: "y", Correct: true, Similarity: 0.95},
		{ID: "c", QuestionID: 3, QuestionText: "third", Difficulty: 2, Answer: "z", Correct: true, Similarity: 1},
	} {
		turn.AnsweredAt = base.Add(time.Duration(i) * time.Minute)
		if err := store.Record(context.Background(), turn); err != nil {
			t.Fatalf("record %s: %v", turn.ID, err)
		}
	}

	recent, err := store.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(recent))
	}
	if recent[0].ID != "c" || recent[1].ID != "b" {
		t.Fatalf("expected newest first, got %s then %s", recent[0].ID, recent[1].ID)
	}
	if !recent[0].Correct || recent[0].Similarity != 1 {
		t.Fatalf("turn fields lost on round trip: %+v", recent[0])
	}
}

func TestRecentOnEmptyStore(t *testing.T) {
	t.Parallel()
	store, err := practiceout.NewSQLiteHistoryStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	recent, err := store.Recent(context.Background(), 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("expected empty history, got %d", len(recent))
	}
}
