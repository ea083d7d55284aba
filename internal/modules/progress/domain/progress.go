package domain

import (
	"math"
	"time"
)

// Stats is the learner's headline numbers as reported by the backend.
type Stats struct {
	XP          int64
	StreakCount int
	LastLogin   time.Time
}

// Quest is today's goal. Progress counts toward Target; the backend flips
// Completed independently, so a caller must not infer it from the counts.
type Quest struct {
	Title       string
	Description string
	Progress    int
	Target      int
	Completed   bool
}

// PercentComplete clamps to [0, 100] so a stale Progress past Target cannot
// overflow a progress bar.
func (q Quest) PercentComplete() int {
	if q.Target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(q.Progress) / float64(q.Target) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

type Achievement struct {
	Name        string
	Description string
	IconClass   string
	UnlockedAt  time.Time
}

type Account struct {
	Username string
	Email    string
}

// Dashboard is one coherent snapshot of everything the home screen shows.
// All parts were fetched together; a partial snapshot is never constructed.
type Dashboard struct {
	Stats        Stats
	Quest        Quest
	Achievements []Achievement
}
