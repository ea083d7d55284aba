package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "lbtui/internal/modules/auth/dto"
	apperrors "lbtui/internal/platform/errors"
	"lbtui/internal/ui/theme"
	authview "lbtui/internal/ui/views/auth"
	dashboardview "lbtui/internal/ui/views/dashboard"
	practiceview "lbtui/internal/ui/views/practice"
	profileview "lbtui/internal/ui/views/profile"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Signup(ctx context.Context, input authdto.SignupInput) (authdto.SignupOutput, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (authdto.SessionOutput, error)
}

// ─── view routing ────────────────────────────────────────────────────────────
// Exactly one view is active at a time; there is no tab bar. Auth gates the
// other three.

type viewID int

const (
	viewAuth viewID = iota
	viewDashboard
	viewPractice
	viewProfile
)

// ─── async messages ───────────────────────────────────────────────────────────

type sessionCheckedMsg struct {
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns view routing and the session
// gate. All business logic is delegated to port interfaces; all rendering is
// delegated to sub-views.
type Model struct {
	auth authPort

	authView authview.Model
	dashView dashboardview.Model
	pracView practiceview.Model
	profView profileview.Model

	active             viewID
	username           string
	refreshAfterAnswer bool
	width              int
	height             int
}

// Options carries the UI knobs read from configuration.
type Options struct {
	AutoAdvance        bool
	AdvanceDelay       int // milliseconds
	RefreshAfterAnswer bool
}

func NewModel(
	auth authPort,
	progress dashboardview.ProgressPort,
	history dashboardview.HistoryPort,
	practice practiceview.PracticePort,
	profile profileview.ProfilePort,
	opts Options,
) Model {
	return Model{
		auth:               auth,
		authView:           authview.New(auth),
		dashView:           dashboardview.New(progress, history),
		pracView:           practiceview.New(practice, opts.AutoAdvance, millis(opts.AdvanceDelay)),
		profView:           profileview.New(profile),
		active:             viewAuth,
		refreshAfterAnswer: opts.RefreshAfterAnswer,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.authView.Init(),
		m.dashView.Init(),
		m.pracView.Init(),
		m.profView.Init(),
		m.checkSessionCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()
		return m, nil

	case sessionCheckedMsg:
		// Local presence check only; an expired token surfaces later as a
		// 401 on the first real request.
		if msg.err == nil && msg.session.Username != "" {
			m.username = msg.session.Username
			m.dashView.SetUsername(msg.session.Username)
			m.active = viewDashboard
			cmd := m.dashView.Reload()
			return m, cmd
		}
		m.active = viewAuth
		return m, nil

	case authview.LoggedInMsg:
		if msg.Err == nil {
			m.username = msg.Session.Username
			m.dashView.SetUsername(msg.Session.Username)
			m.active = viewDashboard
			cmd := m.dashView.Reload()
			return m, cmd
		}
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		return m, cmd

	case loggedOutMsg:
		m.username = ""
		m.active = viewAuth
		m.authView.SetNotice("Logged out. See you next time!")
		return m, nil

	// Results always reach the view that asked for them, even on a 401:
	// the view clears its in-flight flags before the session gate takes
	// over, so nothing is left stuck behind the login form.
	case dashboardview.RefreshedMsg:
		var cmd tea.Cmd
		m.dashView, cmd = m.dashView.Update(msg)
		if m.expireSession(msg.Err) {
			return m, nil
		}
		return m, cmd

	case practiceview.QuestionLoadedMsg:
		var cmd tea.Cmd
		m.pracView, cmd = m.pracView.Update(msg)
		if m.expireSession(msg.Err) {
			return m, nil
		}
		return m, cmd

	case practiceview.AnsweredMsg:
		var cmd tea.Cmd
		m.pracView, cmd = m.pracView.Update(msg)
		if m.expireSession(msg.Err) {
			return m, nil
		}
		cmds = append(cmds, cmd)
		if msg.Err == nil && msg.Result.Submitted && m.refreshAfterAnswer {
			cmds = append(cmds, m.dashView.Reload())
		}
		return m, tea.Batch(cmds...)

	case profileview.LoadedMsg:
		var cmd tea.Cmd
		m.profView, cmd = m.profView.Update(msg)
		if m.expireSession(msg.Err) {
			return m, nil
		}
		return m, cmd

	case tea.KeyMsg:
		if newModel, cmd, handled := m.handleKey(msg); handled {
			return newModel, cmd
		}
	}

	return m.routeToActive(msg)
}

// handleKey covers navigation; anything unhandled falls through to the
// active view so text inputs keep working.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	switch m.active {
	case viewDashboard:
		switch msg.String() {
		case "q":
			return m, tea.Quit, true
		case "p":
			m.active = viewPractice
			cmd := m.pracView.Enter(m.dashView.QuestCompleted())
			return m, cmd, true
		case "o":
			m.active = viewProfile
			cmd := m.profView.Reload()
			return m, cmd, true
		case "r":
			cmd := m.dashView.Reload()
			return m, cmd, true
		case "l":
			return m, m.logoutCmd(), true
		}

	case viewPractice:
		if msg.String() == "esc" {
			m.active = viewDashboard
			cmd := m.dashView.Reload()
			return m, cmd, true
		}

	case viewProfile:
		switch msg.String() {
		case "esc":
			m.active = viewDashboard
			cmd := m.dashView.Reload()
			return m, cmd, true
		case "q":
			return m, tea.Quit, true
		}
	}
	return m, nil, false
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	var content string
	switch m.active {
	case viewAuth:
		content = m.authView.View()
	case viewDashboard:
		content = m.dashView.View()
	case viewPractice:
		content = m.pracView.View()
	case viewProfile:
		content = m.profView.View()
	}
	return lipgloss.NewStyle().Background(theme.Base).Render(content)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// expireSession routes any 401 to the auth view. The HTTP layer has already
// cleared the stored credential by the time this error surfaces, and the
// owning view has already consumed the failed result.
func (m *Model) expireSession(err error) bool {
	if err == nil || !errors.Is(err, apperrors.ErrUnauthorized) {
		return false
	}
	m.username = ""
	m.active = viewAuth
	m.authView.SetNotice("Session expired. Please log in again.")
	return true
}

func (m Model) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case viewAuth:
		m.authView, cmd = m.authView.Update(msg)
	case viewDashboard:
		m.dashView, cmd = m.dashView.Update(msg)
	case viewPractice:
		m.pracView, cmd = m.pracView.Update(msg)
	case viewProfile:
		m.profView, cmd = m.profView.Update(msg)
	}
	return m, cmd
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	m.authView, _ = m.authView.Update(sz)
	m.dashView, _ = m.dashView.Update(sz)
	m.pracView, _ = m.pracView.Update(sz)
	m.profView, _ = m.profView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) checkSessionCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Session(context.Background())
		return sessionCheckedMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
