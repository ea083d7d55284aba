package domain_test

import (
	"testing"

	"lbtui/internal/modules/practice/domain"
)

func question() domain.Question {
	return domain.Question{ID: 42, Text: "2+2?", Difficulty: 1, LessonID: 1}
}

func TestBlankAnswerAndMissingQuestionAreNoOps(t *testing.T) {
	t.Parallel()
	loop := domain.NewLoop()

	if _, ok := loop.BeginSubmit("4"); ok {
		t.Fatalf("submit without a question must be a no-op")
	}
	loop.QuestionReceived(question())
	if _, ok := loop.BeginSubmit("   "); ok {
		t.Fatalf("blank answer must be a no-op")
	}
	if loop.Phase() != domain.PhaseAwaitingAnswer || !loop.InputEnabled() {
		t.Fatalf("no-op must leave state unchanged")
	}
}

func TestNoSecondSubmitWhileInFlight(t *testing.T) {
	t.Parallel()
	loop := domain.NewLoop()
	loop.QuestionReceived(question())

	if _, ok := loop.BeginSubmit("4"); !ok {
		t.Fatalf("first submit must start")
	}
	if _, ok := loop.BeginSubmit("4"); ok {
		t.Fatalf("second submit against the same question must be rejected")
	}
	if loop.CanRequest() {
		t.Fatalf("next question must not be requestable mid-submission")
	}
}

func TestSubmissionUsesFetchedQuestionIdentifiers(t *testing.T) {
	t.Parallel()
	loop := domain.NewLoop()
	loop.QuestionReceived(question())

	sub, ok := loop.BeginSubmit("  4  ")
	if !ok {
		t.Fatalf("submit must start")
	}
	want := domain.Submission{LessonID: 1, QuestionID: 42, DifficultyAnswered: 1, Answer: "4"}
	if sub != want {
		t.Fatalf("submission mismatch: %+v vs %+v", sub, want)
	}
}

func TestSuccessKeepsInputDisabledUntilExplicitAdvance(t *testing.T) {
	t.Parallel()
	loop := domain.NewLoop()
	loop.QuestionReceived(question())
	if _, ok := loop.BeginSubmit("4"); !ok {
		t.Fatalf("submit must start")
	}
	loop.SubmitSucceeded(domain.Result{Correct: true, Similarity: 1.0})

	if loop.Phase() != domain.PhaseAwaitingAnswer {
		t.Fatalf("expected AwaitingAnswer after success, got %v", loop.Phase())
	}
	if loop.InputEnabled() {
		t.Fatalf("input must stay disabled until the caller advances")
	}
	if _, ok := loop.BeginSubmit("again"); ok {
		t.Fatalf("resubmission after feedback must be a no-op")
	}

	// Advancing installs a fresh question and re-enables everything.
	loop.QuestionReceived(domain.Question{ID: 43, Text: "3+3?", Difficulty: 2, LessonID: 1})
	if _, hasFeedback := loop.Feedback(); hasFeedback {
		t.Fatalf("prior feedback must be hidden on advance")
	}
	if !loop.InputEnabled() {
		t.Fatalf("input must be re-enabled for the next question")
	}
}

func TestFailureReEnablesInputForRetry(t *testing.T) {
	t.Parallel()
	loop := domain.NewLoop()
	loop.QuestionReceived(question())
	if _, ok := loop.BeginSubmit("4"); !ok {
		t.Fatalf("submit must start")
	}
	loop.SubmitFailed()

	if loop.Phase() != domain.PhaseAwaitingAnswer || !loop.InputEnabled() {
		t.Fatalf("failure must return to an interactive state")
	}
	q, ok := loop.Current()
	if !ok || q.ID != 42 {
		t.Fatalf("same question must remain current for retry")
	}
	if _, ok := loop.BeginSubmit("4"); !ok {
		t.Fatalf("retry must be possible after failure")
	}
}

func TestSimilarityPercentRounding(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score float64
		want  int
	}{
		{1.0, 100},
		{0.875, 88},
		{0.004, 0},
		{0.005, 1},
		{0, 0},
	}
	for _, tc := range cases {
		if got := (domain.Result{Similarity: tc.score}).SimilarityPercent(); got != tc.want {
			t.Fatalf("similarity %.3f: expected %d%%, got %d%%", tc.score, tc.want, got)
		}
	}
}
