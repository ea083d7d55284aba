package domain

import "strings"

// Overview is the backend's aggregate counters for the admin dashboard.
type Overview struct {
	TotalUsers            int64
	TotalQuestions        int64
	TotalAnswersSubmitted int64
	QuestionsByDifficulty map[int]int64
}

type User struct {
	ID       int64
	Username string
	Email    string
	XP       int64
	IsAdmin  bool
}

type Question struct {
	ID            int64
	Text          string
	CorrectAnswer string
	Difficulty    int
	LessonID      int64
}

// UserUpsert is the write payload for creating or updating a user. Password
// is required on create; on update an empty password keeps the current one.
type UserUpsert struct {
	Username string
	Email    string
	XP       int64
	IsAdmin  bool
	Password string
}

func (u UserUpsert) Validate(creating bool) bool {
	if strings.TrimSpace(u.Username) == "" {
		return false
	}
	if !strings.Contains(u.Email, "@") {
		return false
	}
	if u.XP < 0 {
		return false
	}
	if creating && u.Password == "" {
		return false
	}
	return true
}

type QuestionUpsert struct {
	Text          string
	CorrectAnswer string
	Difficulty    int
	LessonID      int64
}

func (q QuestionUpsert) Validate() bool {
	if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
		return false
	}
	return q.Difficulty >= 1 && q.LessonID >= 1
}
