package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"lbtui/internal/modules/progress/domain"
	progressdto "lbtui/internal/modules/progress/dto"
	progressin "lbtui/internal/modules/progress/port/in"
	progressout "lbtui/internal/modules/progress/port/out"
)

type Interactor struct {
	api progressout.ProgressAPI
	log *slog.Logger
}

func NewInteractor(api progressout.ProgressAPI, log *slog.Logger) progressin.Usecase {
	if log == nil {
		log = slog.Default()
	}
	return &Interactor{api: api, log: log}
}

func (i *Interactor) Refresh(ctx context.Context) (progressdto.DashboardOutput, error) {
	dash, err := i.fetchDashboard(ctx)
	if err != nil {
		return progressdto.DashboardOutput{}, err
	}
	return progressdto.DashboardOutput{
		Stats:        mapStats(dash.Stats),
		Quest:        mapQuest(dash.Quest),
		Achievements: mapAchievements(dash.Achievements),
	}, nil
}

func (i *Interactor) Profile(ctx context.Context) (progressdto.ProfileOutput, error) {
	var (
		account domain.Account
		dash    domain.Dashboard
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		account, err = i.api.Account(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		dash, err = i.fetchDashboard(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		i.log.Warn("profile fetch failed", "err", err)
		return progressdto.ProfileOutput{}, err
	}
	return progressdto.ProfileOutput{
		Username:     account.Username,
		Email:        account.Email,
		Stats:        mapStats(dash.Stats),
		Achievements: mapAchievements(dash.Achievements),
	}, nil
}

func (i *Interactor) Stats(ctx context.Context) (progressdto.StatsOutput, error) {
	stats, err := i.api.Stats(ctx)
	if err != nil {
		return progressdto.StatsOutput{}, err
	}
	return mapStats(stats), nil
}

func (i *Interactor) Quest(ctx context.Context) (progressdto.QuestOutput, error) {
	quest, err := i.api.TodayQuest(ctx)
	if err != nil {
		return progressdto.QuestOutput{}, err
	}
	return mapQuest(quest), nil
}

func (i *Interactor) Achievements(ctx context.Context) ([]progressdto.AchievementOutput, error) {
	achievements, err := i.api.Achievements(ctx)
	if err != nil {
		return nil, err
	}
	return mapAchievements(achievements), nil
}

// fetchDashboard runs the three reads concurrently. The first failure cancels
// the siblings and the snapshot is discarded whole.
func (i *Interactor) fetchDashboard(ctx context.Context) (domain.Dashboard, error) {
	var dash domain.Dashboard
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		dash.Stats, err = i.api.Stats(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		dash.Quest, err = i.api.TodayQuest(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		dash.Achievements, err = i.api.Achievements(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		i.log.Warn("dashboard refresh failed", "err", err)
		return domain.Dashboard{}, err
	}
	return dash, nil
}

func mapStats(stats domain.Stats) progressdto.StatsOutput {
	return progressdto.StatsOutput{
		XP:          stats.XP,
		StreakCount: stats.StreakCount,
		LastLogin:   stats.LastLogin,
	}
}

func mapQuest(quest domain.Quest) progressdto.QuestOutput {
	return progressdto.QuestOutput{
		Title:       quest.Title,
		Description: quest.Description,
		Progress:    quest.Progress,
		Target:      quest.Target,
		Percent:     quest.PercentComplete(),
		Completed:   quest.Completed,
	}
}

func mapAchievements(achievements []domain.Achievement) []progressdto.AchievementOutput {
	outputs := make([]progressdto.AchievementOutput, 0, len(achievements))
	for _, achievement := range achievements {
		outputs = append(outputs, progressdto.AchievementOutput{
			Name:        achievement.Name,
			Description: achievement.Description,
			IconClass:   achievement.IconClass,
			UnlockedAt:  achievement.UnlockedAt,
		})
	}
	return outputs
}
