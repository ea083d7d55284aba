package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lbtui/internal/modules/practice/domain"
	practiceout "lbtui/internal/modules/practice/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryStore struct {
	db *sql.DB
}

func NewSQLiteHistoryStore(dbPath string) (practiceout.HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteHistoryStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteHistoryStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS turns (
  id TEXT PRIMARY KEY,
  question_id INTEGER NOT NULL,
  question_text TEXT NOT NULL,
  difficulty INTEGER NOT NULL,
  answer TEXT NOT NULL,
  correct INTEGER NOT NULL,
  similarity REAL NOT NULL,
  answered_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create turns table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) Record(ctx context.Context, turn domain.Turn) error {
	const stmt = `
INSERT INTO turns (id, question_id, question_text, difficulty, answer, correct, similarity, answered_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		turn.ID,
		turn.QuestionID,
		turn.QuestionText,
		turn.Difficulty,
		turn.Answer,
		boolToInt(turn.Correct),
		turn.Similarity,
		turn.AnsweredAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert turn: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) Recent(ctx context.Context, limit int) ([]domain.Turn, error) {
	const query = `
SELECT id, question_id, question_text, difficulty, answer, correct, similarity, answered_at
FROM turns ORDER BY answered_at DESC, id LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.Turn
	for rows.Next() {
		var turn domain.Turn
		var correct int
		var answeredAt string
		if err := rows.Scan(&turn.ID, &turn.QuestionID, &turn.QuestionText, &turn.Difficulty, &turn.Answer, &correct, &turn.Similarity, &answeredAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turn.Correct = correct != 0
		if at, err := time.Parse(time.RFC3339, answeredAt); err == nil {
			turn.AnsweredAt = at
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return turns, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
