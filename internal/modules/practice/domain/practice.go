package domain

import (
	"math"
	"time"
)

type Question struct {
	ID         int64
	Text       string
	Difficulty int
	LessonID   int64
}

// Result is the backend's verdict for one submitted answer.
type Result struct {
	Correct        bool
	Similarity     float64
	QuestCompleted bool
}

// SimilarityPercent rounds the [0,1] similarity score to a whole percent.
func (r Result) SimilarityPercent() int {
	return int(math.Round(r.Similarity * 100))
}

// Submission carries the identifiers of the question that was actually
// fetched, never re-derived from whatever the UI currently shows.
type Submission struct {
	LessonID           int64
	QuestionID         int64
	DifficultyAnswered int
	Answer             string
}

// Turn is one completed fetch/answer cycle, kept in local history.
type Turn struct {
	ID           string
	QuestionID   int64
	QuestionText string
	Difficulty   int
	Answer       string
	Correct      bool
	Similarity   float64
	AnsweredAt   time.Time
}
