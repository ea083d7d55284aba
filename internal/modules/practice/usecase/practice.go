package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lbtui/internal/modules/practice/domain"
	"lbtui/internal/modules/practice/dto"
	practicein "lbtui/internal/modules/practice/port/in"
	practiceout "lbtui/internal/modules/practice/port/out"
	"lbtui/internal/modules/practice/service"
	apperrors "lbtui/internal/platform/errors"
)

// Interactor owns the practice loop. The loop itself is in-memory; the
// active question store carries the current turn across process runs.
type Interactor struct {
	loop     *domain.Loop
	svc      *service.PracticeService
	api      practiceout.PracticeAPI
	active   practiceout.ActiveQuestionStore
	history  practiceout.HistoryStore
	log      *slog.Logger
	lessonID int64
}

func NewInteractor(
	svc *service.PracticeService,
	api practiceout.PracticeAPI,
	active practiceout.ActiveQuestionStore,
	history practiceout.HistoryStore,
	log *slog.Logger,
	lessonID int64,
) practicein.Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{
		loop:     domain.NewLoop(),
		svc:      svc,
		api:      api,
		active:   active,
		history:  history,
		log:      log,
		lessonID: lessonID,
	}
}

func (i *Interactor) Next(ctx context.Context) (dto.QuestionOutput, error) {
	if !i.loop.CanRequest() {
		return dto.QuestionOutput{}, fmt.Errorf("a submission is in flight")
	}
	q, err := i.api.NextQuestion(ctx, i.lessonID)
	if err != nil {
		return dto.QuestionOutput{}, err
	}
	i.loop.QuestionReceived(q)
	if i.active != nil {
		if err := i.active.SaveActive(ctx, q); err != nil {
			i.log.Warn("persist active question", "err", err)
		}
	}
	return questionOutput(q), nil
}

func (i *Interactor) Current(ctx context.Context) (dto.QuestionOutput, error) {
	i.hydrate(ctx)
	q, ok := i.loop.Current()
	if !ok {
		return dto.QuestionOutput{}, apperrors.ErrNoActiveQuestion
	}
	return questionOutput(q), nil
}

func (i *Interactor) Answer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error) {
	i.hydrate(ctx)
	q, _ := i.loop.Current()
	sub, ok := i.loop.BeginSubmit(input.Answer)
	if !ok {
		return dto.AnswerOutput{Submitted: false}, nil
	}
	result, err := i.api.SubmitAnswer(ctx, sub)
	if err != nil {
		i.loop.SubmitFailed()
		return dto.AnswerOutput{}, err
	}
	i.loop.SubmitSucceeded(result)

	// Local bookkeeping never fails the turn.
	if i.history != nil {
		if err := i.history.Record(ctx, i.svc.NewTurn(q, sub, result)); err != nil {
			i.log.Warn("record turn", "err", err)
		}
	}
	if i.active != nil {
		if err := i.active.ClearActive(ctx); err != nil {
			i.log.Warn("clear active question", "err", err)
		}
	}

	return dto.AnswerOutput{
		Submitted:      true,
		Correct:        result.Correct,
		SimilarityPct:  result.SimilarityPercent(),
		QuestCompleted: result.QuestCompleted,
	}, nil
}

func (i *Interactor) Recent(ctx context.Context, limit int) ([]dto.TurnOutput, error) {
	if i.history == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	turns, err := i.history.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TurnOutput, len(turns))
	for n, turn := range turns {
		out[n] = dto.TurnOutput{
			QuestionID:    turn.QuestionID,
			QuestionText:  turn.QuestionText,
			Difficulty:    turn.Difficulty,
			Answer:        turn.Answer,
			Correct:       turn.Correct,
			SimilarityPct: domain.Result{Similarity: turn.Similarity}.SimilarityPercent(),
			AnsweredAt:    turn.AnsweredAt,
		}
	}
	return out, nil
}

// hydrate resumes a question persisted by an earlier invocation when the
// in-memory loop has none.
func (i *Interactor) hydrate(ctx context.Context) {
	if i.active == nil {
		return
	}
	if _, ok := i.loop.Current(); ok || i.loop.Phase() != domain.PhaseIdle {
		return
	}
	q, err := i.active.LoadActive(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoActiveQuestion) {
			i.log.Warn("load active question", "err", err)
		}
		return
	}
	i.loop.QuestionReceived(q)
}

func questionOutput(q domain.Question) dto.QuestionOutput {
	return dto.QuestionOutput{
		QuestionID: q.ID,
		Text:       q.Text,
		Difficulty: q.Difficulty,
		LessonID:   q.LessonID,
	}
}
