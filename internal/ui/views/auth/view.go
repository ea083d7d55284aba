package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "lbtui/internal/modules/auth/dto"
	apperrors "lbtui/internal/platform/errors"
	"lbtui/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Signup(ctx context.Context, input authdto.SignupInput) (authdto.SignupOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoggedInMsg bubbles to the app model, which switches to the dashboard.
type LoggedInMsg struct {
	Session authdto.SessionOutput
	Err     error
}

type signupDoneMsg struct {
	out authdto.SignupOutput
	err error
}

// switchToLoginMsg fires after the signup success beat so the new user lands
// on the login form with their username prefilled.
type switchToLoginMsg struct{}

// ─── form mode ───────────────────────────────────────────────────────────────

type mode int

const (
	modeLogin mode = iota
	modeSignup
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port AuthPort

	mode     mode
	username textinput.Model
	email    textinput.Model
	password textinput.Model
	focus    int

	busy   bool
	notice string
	errMsg string
	width  int
	height int
}

func New(port AuthPort) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		port:     port,
		mode:     modeLogin,
		username: username,
		email:    email,
		password: password,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoggedInMsg:
		m.busy = false
		if msg.Err != nil {
			if errors.Is(msg.Err, apperrors.ErrUnauthorized) {
				m.errMsg = "Login failed. Check your username and password."
			} else {
				m.errMsg = msg.Err.Error()
			}
			m.password.SetValue("")
		}
		return m, nil

	case signupDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.notice = "Account created! Switching to login…"
		m.username.SetValue(msg.out.Username)
		return m, tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg {
			return switchToLoginMsg{}
		})

	case switchToLoginMsg:
		m.mode = modeLogin
		m.notice = "Account created. Log in to start learning."
		m.password.SetValue("")
		m.setFocus(0)
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "ctrl+s":
			m.toggleMode()
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	return m.updateInputs(msg)
}

func (m Model) View() string {
	var sb strings.Builder

	title := "LearnBuddy — Log In"
	hint := "enter: log in  ctrl+s: create an account  ctrl+c: quit"
	if m.mode == modeSignup {
		title = "LearnBuddy — Sign Up"
		hint = "enter: create account  ctrl+s: back to login  ctrl+c: quit"
	}
	sb.WriteString(theme.Title.Render(title) + "\n\n")

	sb.WriteString(m.username.View() + "\n")
	if m.mode == modeSignup {
		sb.WriteString(m.email.View() + "\n")
	}
	sb.WriteString(m.password.View() + "\n\n")

	if m.busy {
		sb.WriteString(theme.Muted.Render("Talking to the server…") + "\n")
	}
	if m.errMsg != "" {
		sb.WriteString(theme.Bad.Render(m.errMsg) + "\n")
	}
	if m.notice != "" {
		sb.WriteString(theme.Good.Render(m.notice) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render(hint))

	form := theme.PaneActive.Width(48).Render(sb.String())
	if m.width == 0 {
		return form
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// SetNotice replaces the banner line, used for "session expired" on redirect.
func (m *Model) SetNotice(text string) {
	m.notice = text
	m.errMsg = ""
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) fieldCount() int {
	if m.mode == modeSignup {
		return 3
	}
	return 2
}

func (m *Model) setFocus(target int) {
	count := m.fieldCount()
	m.focus = ((target % count) + count) % count

	m.username.Blur()
	m.email.Blur()
	m.password.Blur()
	switch {
	case m.focus == 0:
		m.username.Focus()
	case m.mode == modeSignup && m.focus == 1:
		m.email.Focus()
	default:
		m.password.Focus()
	}
}

func (m *Model) toggleMode() {
	if m.mode == modeLogin {
		m.mode = modeSignup
	} else {
		m.mode = modeLogin
	}
	m.errMsg = ""
	m.notice = ""
	m.setFocus(0)
}

func (m Model) submit() (Model, tea.Cmd) {
	username := strings.TrimSpace(m.username.Value())
	password := m.password.Value()
	if username == "" || password == "" {
		m.errMsg = "username and password are required"
		return m, nil
	}
	m.busy = true
	m.errMsg = ""
	m.notice = ""

	if m.mode == modeSignup {
		email := strings.TrimSpace(m.email.Value())
		return m, func() tea.Msg {
			out, err := m.port.Signup(context.Background(), authdto.SignupInput{
				Username: username,
				Email:    email,
				Password: password,
			})
			return signupDoneMsg{out: out, err: err}
		}
	}
	return m, func() tea.Msg {
		session, err := m.port.Login(context.Background(), authdto.LoginInput{
			Username: username,
			Password: password,
		})
		return LoggedInMsg{Session: session, Err: err}
	}
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	cmds = append(cmds, cmd)
	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}
