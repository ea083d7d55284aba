package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	practiceout "lbtui/internal/modules/practice/adapter/out"
	"lbtui/internal/modules/practice/domain"
	practicedto "lbtui/internal/modules/practice/dto"
	practicein "lbtui/internal/modules/practice/port/in"
	"lbtui/internal/modules/practice/service"
	"lbtui/internal/modules/practice/usecase"
	apperrors "lbtui/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeID struct{}

func (fakeID) New() string { return "turn-1" }

type fakeAPI struct {
	question   domain.Question
	nextErr    error
	result     domain.Result
	submitErr  error
	submits    []domain.Submission
	nextCalls  int
}

func (f *fakeAPI) NextQuestion(_ context.Context, lessonID int64) (domain.Question, error) {
	f.nextCalls++
	if f.nextErr != nil {
		return domain.Question{}, f.nextErr
	}
	q := f.question
	q.LessonID = lessonID
	return q, nil
}

func (f *fakeAPI) SubmitAnswer(_ context.Context, sub domain.Submission) (domain.Result, error) {
	if f.submitErr != nil {
		return domain.Result{}, f.submitErr
	}
	f.submits = append(f.submits, sub)
	return f.result, nil
}

type memHistory struct {
	turns []domain.Turn
	err   error
}

func (m *memHistory) Record(_ context.Context, turn domain.Turn) error {
	if m.err != nil {
		return m.err
	}
	m.turns = append(m.turns, turn)
	return nil
}

func (m *memHistory) Recent(_ context.Context, limit int) ([]domain.Turn, error) {
	if limit > len(m.turns) {
		limit = len(m.turns)
	}
	return m.turns[:limit], nil
}

func newInteractor(t *testing.T, api *fakeAPI, history *memHistory) practicein.Usecase {
	t.Helper()
	svc := service.NewPracticeService(fakeClock{now: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}, fakeID{})
	return usecase.NewInteractor(svc, api, practiceout.NewFileActiveQuestionStore(t.TempDir()), history, nil, 1)
}

func TestFullTurnScenario(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{
		question: domain.Question{ID: 42, Text: "2+2?", Difficulty: 1},
		result:   domain.Result{Correct: true, Similarity: 1.0, QuestCompleted: false},
	}
	history := &memHistory{}
	uc := newInteractor(t, api, history)

	q, err := uc.Next(context.Background())
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if q.Text != "2+2?" || q.Difficulty != 1 || q.QuestionID != 42 {
		t.Fatalf("unexpected question: %+v", q)
	}

	out, err := uc.Answer(context.Background(), practicedto.AnswerInput{Answer: "4"})
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if !out.Submitted || !out.Correct || out.SimilarityPct != 100 || out.QuestCompleted {
		t.Fatalf("unexpected answer output: %+v", out)
	}

	if len(api.submits) != 1 {
		t.Fatalf("expected exactly one submission, got %d", len(api.submits))
	}
	sub := api.submits[0]
	if sub.QuestionID != 42 || sub.DifficultyAnswered != 1 || sub.Answer != "4" || sub.LessonID != 1 {
		t.Fatalf("submission must reuse the fetched question's identifiers: %+v", sub)
	}

	if len(history.turns) != 1 || history.turns[0].ID != "turn-1" || !history.turns[0].Correct {
		t.Fatalf("turn not recorded: %+v", history.turns)
	}
}

func TestAnswerWithoutQuestionOrTextIsNoOp(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{question: domain.Question{ID: 42, Text: "2+2?", Difficulty: 1}}
	uc := newInteractor(t, api, &memHistory{})

	out, err := uc.Answer(context.Background(), practicedto.AnswerInput{Answer: "4"})
	if err != nil || out.Submitted {
		t.Fatalf("answer without question must be a silent no-op, got %+v err=%v", out, err)
	}

	if _, err := uc.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	out, err = uc.Answer(context.Background(), practicedto.AnswerInput{Answer: "   "})
	if err != nil || out.Submitted {
		t.Fatalf("blank answer must be a silent no-op, got %+v err=%v", out, err)
	}
	if len(api.submits) != 0 {
		t.Fatalf("no-ops must not reach the API")
	}
}

func TestSubmitFailureKeepsQuestionForRetry(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{
		question:  domain.Question{ID: 42, Text: "2+2?", Difficulty: 1},
		submitErr: errors.New("backend unavailable"),
	}
	uc := newInteractor(t, api, &memHistory{})

	if _, err := uc.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	if _, err := uc.Answer(context.Background(), practicedto.AnswerInput{Answer: "4"}); err == nil {
		t.Fatalf("expected submit failure")
	}

	q, err := uc.Current(context.Background())
	if err != nil || q.QuestionID != 42 {
		t.Fatalf("question must remain current after failure, got %+v err=%v", q, err)
	}

	api.submitErr = nil
	out, err := uc.Answer(context.Background(), practicedto.AnswerInput{Answer: "4"})
	if err != nil || !out.Submitted {
		t.Fatalf("retry must work after failure, got %+v err=%v", out, err)
	}
}

func TestNextFailureKeepsPriorState(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{question: domain.Question{ID: 42, Text: "2+2?", Difficulty: 1}}
	uc := newInteractor(t, api, &memHistory{})

	if _, err := uc.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	api.nextErr = errors.New("backend unavailable")
	if _, err := uc.Next(context.Background()); err == nil {
		t.Fatalf("expected next failure")
	}
	q, err := uc.Current(context.Background())
	if err != nil || q.QuestionID != 42 {
		t.Fatalf("prior question must survive a failed fetch, got %+v err=%v", q, err)
	}
}

func TestActiveQuestionResumesAcrossInteractors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	api := &fakeAPI{question: domain.Question{ID: 42, Text: "2+2?", Difficulty: 1}, result: domain.Result{Correct: true, Similarity: 1}}
	svc := service.NewPracticeService(fakeClock{now: time.Now()}, fakeID{})
	active := practiceout.NewFileActiveQuestionStore(dir)

	first := usecase.NewInteractor(svc, api, active, &memHistory{}, nil, 1)
	if _, err := first.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}

	// A fresh interactor simulates a new CLI invocation.
	second := usecase.NewInteractor(svc, api, active, &memHistory{}, nil, 1)
	q, err := second.Current(context.Background())
	if err != nil || q.QuestionID != 42 {
		t.Fatalf("active question must resume, got %+v err=%v", q, err)
	}
	out, err := second.Answer(context.Background(), practicedto.AnswerInput{Answer: "4"})
	if err != nil || !out.Submitted {
		t.Fatalf("resumed question must be answerable, got %+v err=%v", out, err)
	}

	third := usecase.NewInteractor(svc, api, active, &memHistory{}, nil, 1)
	if _, err := third.Current(context.Background()); !errors.Is(err, apperrors.ErrNoActiveQuestion) {
		t.Fatalf("answered question must not resume again, got %v", err)
	}
}

func TestHistoryFailureDoesNotFailTheTurn(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{question: domain.Question{ID: 42, Text: "2+2?", Difficulty: 1}, result: domain.Result{Correct: true, Similarity: 0.9}}
	uc := newInteractor(t, api, &memHistory{err: errors.New("disk full")})

	if _, err := uc.Next(context.Background()); err != nil {
		t.Fatalf("next: %v", err)
	}
	out, err := uc.Answer(context.Background(), practicedto.AnswerInput{Answer: "4"})
	if err != nil || !out.Submitted {
		t.Fatalf("history failure must not fail the turn, got %+v err=%v", out, err)
	}
}
