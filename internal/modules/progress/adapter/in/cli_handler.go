package in

import (
	"context"

	progressdto "lbtui/internal/modules/progress/dto"
	progressin "lbtui/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Refresh(ctx context.Context) (progressdto.DashboardOutput, error) {
	return h.usecase.Refresh(ctx)
}

func (h CLIHandler) Profile(ctx context.Context) (progressdto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) (progressdto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}

func (h CLIHandler) Quest(ctx context.Context) (progressdto.QuestOutput, error) {
	return h.usecase.Quest(ctx)
}

func (h CLIHandler) Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error) {
	return h.usecase.Achievements(ctx)
}
