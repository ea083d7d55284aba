package in

import (
	"context"

	progressdto "lbtui/internal/modules/progress/dto"
)

// Usecase reads the learner's progress from the backend.
type Usecase interface {
	// Refresh fetches stats, today's quest and achievements together. The
	// fetches run concurrently but land as one unit: any failure discards
	// the whole snapshot so the caller never renders mixed-age data.
	Refresh(ctx context.Context) (progressdto.DashboardOutput, error)

	// Profile combines account identity with stats and achievements.
	Profile(ctx context.Context) (progressdto.ProfileOutput, error)

	Stats(ctx context.Context) (progressdto.StatsOutput, error)
	Quest(ctx context.Context) (progressdto.QuestOutput, error)
	Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error)
}
