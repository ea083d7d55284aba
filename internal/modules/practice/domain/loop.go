package domain

import "strings"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingAnswer
	PhaseSubmitting
)

// Loop is the practice turn state machine:
//
//	Idle → AwaitingAnswer → Submitting → AwaitingAnswer → …
//
// After a successful submission the loop stays in AwaitingAnswer with input
// disabled until the caller explicitly advances to the next question, so the
// answered question remains on screen next to its feedback. A failed
// submission re-enables input with the same question so the user can retry.
type Loop struct {
	phase        Phase
	current      Question
	hasQuestion  bool
	inputEnabled bool
	feedback     Result
	hasFeedback  bool
}

func NewLoop() *Loop {
	return &Loop{phase: PhaseIdle}
}

func (l *Loop) Phase() Phase { return l.phase }

func (l *Loop) Current() (Question, bool) { return l.current, l.hasQuestion }

func (l *Loop) InputEnabled() bool { return l.inputEnabled }

func (l *Loop) Feedback() (Result, bool) { return l.feedback, l.hasFeedback }

// CanRequest reports whether fetching the next question is allowed: valid
// from Idle or AwaitingAnswer, never while a submission is in flight.
func (l *Loop) CanRequest() bool { return l.phase != PhaseSubmitting }

// QuestionReceived installs a freshly fetched question: prior feedback is
// hidden, prior input cleared by the caller, submission re-enabled.
func (l *Loop) QuestionReceived(q Question) {
	l.phase = PhaseAwaitingAnswer
	l.current = q
	l.hasQuestion = true
	l.inputEnabled = true
	l.hasFeedback = false
	l.feedback = Result{}
}

// BeginSubmit guards the transition into Submitting. A blank answer, a
// missing question, or an in-flight or finished submission make it a no-op
// (not an error) and ok is false. On success input is disabled so a second
// submission against the same question cannot start.
func (l *Loop) BeginSubmit(answer string) (Submission, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" || !l.hasQuestion || l.phase != PhaseAwaitingAnswer || !l.inputEnabled {
		return Submission{}, false
	}
	l.phase = PhaseSubmitting
	l.inputEnabled = false
	return Submission{
		LessonID:           l.current.LessonID,
		QuestionID:         l.current.ID,
		DifficultyAnswered: l.current.Difficulty,
		Answer:             answer,
	}, true
}

// SubmitSucceeded records feedback and returns to AwaitingAnswer with input
// still disabled; advancing is a separate explicit action.
func (l *Loop) SubmitSucceeded(r Result) {
	l.phase = PhaseAwaitingAnswer
	l.feedback = r
	l.hasFeedback = true
}

// SubmitFailed returns to AwaitingAnswer with input re-enabled so the same
// question can be retried. The controller is never left stuck.
func (l *Loop) SubmitFailed() {
	l.phase = PhaseAwaitingAnswer
	l.inputEnabled = true
}

// Reset drops the current question, e.g. when leaving the practice view.
func (l *Loop) Reset() {
	*l = Loop{phase: PhaseIdle}
}
