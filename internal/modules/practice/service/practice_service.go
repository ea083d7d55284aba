package service

import (
	"lbtui/internal/modules/practice/domain"
	"lbtui/internal/platform/clock"
	"lbtui/internal/platform/id"
)

// PracticeService stamps completed turns for the history log.
type PracticeService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewPracticeService(clock clock.Clock, idGen id.Generator) *PracticeService {
	return &PracticeService{clock: clock, idGen: idGen}
}

func (s *PracticeService) NewTurn(q domain.Question, sub domain.Submission, r domain.Result) domain.Turn {
	return domain.Turn{
		ID:           s.idGen.New(),
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Difficulty:   sub.DifficultyAnswered,
		Answer:       sub.Answer,
		Correct:      r.Correct,
		Similarity:   r.Similarity,
		AnsweredAt:   s.clock.Now(),
	}
}
