package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	practicedto "lbtui/internal/modules/practice/dto"
	progressdto "lbtui/internal/modules/progress/dto"
	"lbtui/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type ProgressPort interface {
	Refresh(ctx context.Context) (progressdto.DashboardOutput, error)
}

type HistoryPort interface {
	Recent(ctx context.Context, limit int) ([]practicedto.TurnOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RefreshedMsg struct {
	Dashboard progressdto.DashboardOutput
	Err       error
}

type historyLoadedMsg struct {
	turns []practicedto.TurnOutput
	err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	progressPort ProgressPort
	historyPort  HistoryPort

	dashboard progressdto.DashboardOutput
	turns     []practicedto.TurnOutput
	questBar  progress.Model
	spinner   spinner.Model
	loading   bool
	loaded    bool
	errMsg    string
	username  string
	width     int
	height    int
}

func New(progressPort ProgressPort, historyPort HistoryPort) Model {
	bar := progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green)))
	bar.Width = 36

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		progressPort: progressPort,
		historyPort:  historyPort,
		questBar:     bar,
		spinner:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Reload kicks off a full refresh. The app model calls this every time the
// dashboard becomes the active view, so the numbers are never stale on entry.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.refreshCmd(), m.historyCmd(), m.spinner.Tick)
}

func (m *Model) SetUsername(username string) {
	m.username = username
}

// QuestCompleted reports whether today's quest is already done. The practice
// view uses it to stop offering new questions.
func (m Model) QuestCompleted() bool {
	return m.loaded && m.dashboard.Quest.Completed
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RefreshedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.loaded = true
		m.dashboard = msg.Dashboard
		return m, nil

	case historyLoadedMsg:
		if msg.err == nil {
			m.turns = msg.turns
		}
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
			m.spinner.View()+" Loading your progress…")
	}
	if m.errMsg != "" && !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("Could not load progress: "+m.errMsg)+"\n\n"+
				theme.Muted.Render("r: retry  q: quit"))
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), m.renderQuest())
	right := m.renderHistory()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := theme.Title.Render("Dashboard")
	if m.username != "" {
		header += theme.Muted.Render("  —  " + m.username)
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}
	if m.errMsg != "" {
		header += "  " + theme.Bad.Render(m.errMsg)
	}
	hint := theme.Muted.Render("p: practice  o: profile  r: refresh  l: log out  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hint)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderStats() string {
	stats := m.dashboard.Stats
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Stats") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d\n", theme.Muted.Render("xp:     "), stats.XP))
	sb.WriteString(fmt.Sprintf("%s %d day(s)\n", theme.Muted.Render("streak: "), stats.StreakCount))
	last := "—"
	if !stats.LastLogin.IsZero() {
		last = stats.LastLogin.Format("2006-01-02 15:04")
	}
	sb.WriteString(theme.Muted.Render("seen:   ") + " " + last + "\n")
	return theme.Pane.Width(44).Render(sb.String())
}

func (m Model) renderQuest() string {
	quest := m.dashboard.Quest
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today's Quest") + "\n\n")
	if quest.Title == "" {
		sb.WriteString(theme.Muted.Render("No quest today."))
		return theme.Pane.Width(44).Render(sb.String())
	}
	sb.WriteString(quest.Title + "\n")
	sb.WriteString(theme.Muted.Render(quest.Description) + "\n\n")
	sb.WriteString(m.questBar.ViewAs(float64(quest.Percent)/100) + "\n")
	sb.WriteString(fmt.Sprintf("%d / %d", quest.Progress, quest.Target))
	if quest.Completed {
		sb.WriteString("  " + theme.Good.Render("✔ complete"))
	}
	return theme.Pane.Width(44).Render(sb.String())
}

func (m Model) renderHistory() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Recent Answers") + "\n\n")
	if len(m.turns) == 0 {
		sb.WriteString(theme.Muted.Render("Nothing yet. Press p to practice."))
	}
	for _, turn := range m.turns {
		mark := theme.Bad.Render("✘")
		if turn.Correct {
			mark = theme.Good.Render("✔")
		}
		text := turn.QuestionText
		if len(text) > 28 {
			text = text[:28] + "…"
		}
		sb.WriteString(fmt.Sprintf("%s %-30s %3d%%\n", mark, text, turn.SimilarityPct))
	}
	return theme.Pane.Width(44).Render(sb.String())
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		dashboard, err := m.progressPort.Refresh(context.Background())
		return RefreshedMsg{Dashboard: dashboard, Err: err}
	}
}

func (m Model) historyCmd() tea.Cmd {
	return func() tea.Msg {
		turns, err := m.historyPort.Recent(context.Background(), 8)
		return historyLoadedMsg{turns: turns, err: err}
	}
}
