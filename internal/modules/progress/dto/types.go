package dto

import "time"

type StatsOutput struct {
	XP          int64
	StreakCount int
	LastLogin   time.Time
}

type QuestOutput struct {
	Title       string
	Description string
	Progress    int
	Target      int
	Percent     int
	Completed   bool
}

type AchievementOutput struct {
	Name        string
	Description string
	IconClass   string
	UnlockedAt  time.Time
}

type DashboardOutput struct {
	Stats        StatsOutput
	Quest        QuestOutput
	Achievements []AchievementOutput
}

type ProfileOutput struct {
	Username     string
	Email        string
	Stats        StatsOutput
	Achievements []AchievementOutput
}
