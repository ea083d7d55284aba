package out

import (
	"context"

	"lbtui/internal/modules/practice/domain"
	practiceout "lbtui/internal/modules/practice/port/out"
	"lbtui/internal/platform/httpapi"
)

type HTTPPracticeAPI struct {
	client *httpapi.Client
}

func NewHTTPPracticeAPI(client *httpapi.Client) practiceout.PracticeAPI {
	return &HTTPPracticeAPI{client: client}
}

func (a *HTTPPracticeAPI) NextQuestion(ctx context.Context, lessonID int64) (domain.Question, error) {
	body := map[string]int64{"lesson_id": lessonID}
	var resp struct {
		QuestionID      int64  `json:"question_id"`
		QuestionText    string `json:"question_text"`
		DifficultyLevel int    `json:"difficulty_level"`
	}
	if err := a.client.Do(ctx, "POST", "/next_question", body, &resp); err != nil {
		return domain.Question{}, err
	}
	return domain.Question{
		ID:         resp.QuestionID,
		Text:       resp.QuestionText,
		Difficulty: resp.DifficultyLevel,
		LessonID:   lessonID,
	}, nil
}

func (a *HTTPPracticeAPI) SubmitAnswer(ctx context.Context, sub domain.Submission) (domain.Result, error) {
	body := map[string]any{
		"lesson_id":           sub.LessonID,
		"question_id":         sub.QuestionID,
		"difficulty_answered": sub.DifficultyAnswered,
		"user_answer":         sub.Answer,
	}
	var resp struct {
		IsCorrect       bool    `json:"is_correct"`
		SimilarityScore float64 `json:"similarity_score"`
		QuestCompleted  bool    `json:"quest_completed"`
	}
	if err := a.client.Do(ctx, "POST", "/submit_answer", body, &resp); err != nil {
		return domain.Result{}, err
	}
	return domain.Result{
		Correct:        resp.IsCorrect,
		Similarity:     resp.SimilarityScore,
		QuestCompleted: resp.QuestCompleted,
	}, nil
}
