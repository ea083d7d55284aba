package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lbtui/internal/modules/practice/domain"
	practiceout "lbtui/internal/modules/practice/port/out"
	apperrors "lbtui/internal/platform/errors"
)

type storedQuestion struct {
	QuestionID int64  `json:"question_id"`
	Text       string `json:"question_text"`
	Difficulty int    `json:"difficulty_level"`
	LessonID   int64  `json:"lesson_id"`
}

type FileActiveQuestionStore struct {
	path string
}

func NewFileActiveQuestionStore(dataDir string) practiceout.ActiveQuestionStore {
	return &FileActiveQuestionStore{path: filepath.Join(dataDir, "active-question.json")}
}

func (s *FileActiveQuestionStore) SaveActive(_ context.Context, q domain.Question) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create question dir: %w", err)
	}
	payload, err := json.MarshalIndent(storedQuestion{
		QuestionID: q.ID,
		Text:       q.Text,
		Difficulty: q.Difficulty,
		LessonID:   q.LessonID,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal question: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write question: %w", err)
	}
	return nil
}

func (s *FileActiveQuestionStore) LoadActive(_ context.Context) (domain.Question, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Question{}, apperrors.ErrNoActiveQuestion
		}
		return domain.Question{}, fmt.Errorf("read question: %w", err)
	}
	stored := storedQuestion{}
	if err := json.Unmarshal(payload, &stored); err != nil {
		return domain.Question{}, fmt.Errorf("decode question: %w", err)
	}
	if stored.QuestionID == 0 {
		return domain.Question{}, apperrors.ErrNoActiveQuestion
	}
	return domain.Question{
		ID:         stored.QuestionID,
		Text:       stored.Text,
		Difficulty: stored.Difficulty,
		LessonID:   stored.LessonID,
	}, nil
}

func (s *FileActiveQuestionStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear question: %w", err)
	}
	return nil
}
