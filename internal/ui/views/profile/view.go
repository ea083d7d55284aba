package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "lbtui/internal/modules/progress/dto"
	"lbtui/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProfilePort interface {
	Profile(ctx context.Context) (progressdto.ProfileOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Profile progressdto.ProfileOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    ProfilePort
	profile progressdto.ProfileOutput
	spinner spinner.Model
	loading bool
	loaded  bool
	errMsg  string
	width   int
	height  int
}

func New(port ProfilePort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		profile, err := port.Profile(context.Background())
		return LoadedMsg{Profile: profile, Err: err}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.loaded = true
		m.profile = msg.Profile
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading && !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading profile…")
	}
	if m.errMsg != "" && !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("Could not load profile: "+m.errMsg))
	}

	p := m.profile
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.Username) + "\n")
	sb.WriteString(theme.Muted.Render(p.Email) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d\n", theme.Muted.Render("xp:     "), p.Stats.XP))
	sb.WriteString(fmt.Sprintf("%s %d day(s)\n", theme.Muted.Render("streak: "), p.Stats.StreakCount))
	if !p.Stats.LastLogin.IsZero() {
		sb.WriteString(theme.Muted.Render("seen:   ") + " " + p.Stats.LastLogin.Format("2006-01-02 15:04") + "\n")
	}

	sb.WriteString("\n" + theme.Title.Render("Achievements") + "\n\n")
	if len(p.Achievements) == 0 {
		sb.WriteString(theme.Muted.Render("None unlocked yet. Keep practicing!") + "\n")
	}
	for _, a := range p.Achievements {
		sb.WriteString(theme.Hot.Render("★ "+a.Name) + "\n")
		sb.WriteString("  " + theme.Muted.Render(a.Description))
		if !a.UnlockedAt.IsZero() {
			sb.WriteString(theme.Muted.Render("  (" + a.UnlockedAt.Format("2006-01-02") + ")"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("esc: dashboard  q: quit"))

	pane := theme.Pane.Width(56).Render(sb.String())
	if m.width == 0 {
		return pane
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}
