package dto

type LoginInput struct {
	Username string
	Password string
}

type SessionOutput struct {
	Username string
}

type OverviewOutput struct {
	TotalUsers            int64
	TotalQuestions        int64
	TotalAnswersSubmitted int64
	QuestionsByDifficulty map[int]int64
}

type UserOutput struct {
	ID       int64
	Username string
	Email    string
	XP       int64
	IsAdmin  bool
}

// UserInput carries the writable user fields. Password empty on update means
// keep the existing password.
type UserInput struct {
	Username string
	Email    string
	XP       int64
	IsAdmin  bool
	Password string
}

type QuestionOutput struct {
	ID         int64
	Text       string
	Difficulty int
	LessonID   int64
}

type QuestionInput struct {
	Text          string
	CorrectAnswer string
	Difficulty    int
	LessonID      int64
}
