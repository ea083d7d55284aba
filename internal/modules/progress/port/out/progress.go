package out

import (
	"context"

	"lbtui/internal/modules/progress/domain"
)

// ProgressAPI is the backend's read side for the learner's own progress.
type ProgressAPI interface {
	Stats(ctx context.Context) (domain.Stats, error)
	TodayQuest(ctx context.Context) (domain.Quest, error)
	Achievements(ctx context.Context) ([]domain.Achievement, error)
	Account(ctx context.Context) (domain.Account, error)
}
