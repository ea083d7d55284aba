package dto

import "time"

type QuestionOutput struct {
	QuestionID int64
	Text       string
	Difficulty int
	LessonID   int64
}

type AnswerInput struct {
	Answer string
}

// AnswerOutput with Submitted=false means the guard turned the call into a
// no-op: nothing was sent and the loop state is unchanged.
type AnswerOutput struct {
	Submitted      bool
	Correct        bool
	SimilarityPct  int
	QuestCompleted bool
}

type TurnOutput struct {
	QuestionID    int64
	QuestionText  string
	Difficulty    int
	Answer        string
	Correct       bool
	SimilarityPct int
	AnsweredAt    time.Time
}
