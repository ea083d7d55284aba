package in

import (
	"context"

	"lbtui/internal/modules/practice/dto"
)

type Usecase interface {
	// Next fetches a fresh question and makes it current. On failure the
	// prior state is kept; no partial question is ever shown.
	Next(ctx context.Context) (dto.QuestionOutput, error)
	// Current returns the question awaiting an answer, resuming one left
	// over from an earlier run when needed.
	Current(ctx context.Context) (dto.QuestionOutput, error)
	// Answer submits against the previously fetched question. Blank input
	// or no current question are no-ops, reported via Submitted=false.
	Answer(ctx context.Context, input dto.AnswerInput) (dto.AnswerOutput, error)
	Recent(ctx context.Context, limit int) ([]dto.TurnOutput, error)
}
