package out

import (
	"context"

	"lbtui/internal/modules/practice/domain"
)

type PracticeAPI interface {
	NextQuestion(ctx context.Context, lessonID int64) (domain.Question, error)
	SubmitAnswer(ctx context.Context, sub domain.Submission) (domain.Result, error)
}

// ActiveQuestionStore persists the question awaiting an answer so a CLI
// invocation (or a quit TUI) can resume the same turn.
type ActiveQuestionStore interface {
	SaveActive(ctx context.Context, q domain.Question) error
	LoadActive(ctx context.Context) (domain.Question, error)
	ClearActive(ctx context.Context) error
}

// HistoryStore keeps answered turns locally for the history command and the
// dashboard's recent-activity pane.
type HistoryStore interface {
	Record(ctx context.Context, turn domain.Turn) error
	Recent(ctx context.Context, limit int) ([]domain.Turn, error)
}
