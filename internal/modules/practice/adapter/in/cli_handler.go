package in

import (
	"context"

	practicedto "lbtui/internal/modules/practice/dto"
	practicein "lbtui/internal/modules/practice/port/in"
)

type CLIHandler struct {
	usecase practicein.Usecase
}

func NewCLIHandler(usecase practicein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Next(ctx context.Context) (practicedto.QuestionOutput, error) {
	return h.usecase.Next(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (practicedto.QuestionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Answer(ctx context.Context, text string) (practicedto.AnswerOutput, error) {
	return h.usecase.Answer(ctx, practicedto.AnswerInput{Answer: text})
}

func (h CLIHandler) Recent(ctx context.Context, limit int) ([]practicedto.TurnOutput, error) {
	return h.usecase.Recent(ctx, limit)
}
