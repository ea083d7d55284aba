package practice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	practicedto "lbtui/internal/modules/practice/dto"
	"lbtui/internal/ui/components"
	"lbtui/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type PracticePort interface {
	Next(ctx context.Context) (practicedto.QuestionOutput, error)
	Answer(ctx context.Context, input practicedto.AnswerInput) (practicedto.AnswerOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type QuestionLoadedMsg struct {
	Question practicedto.QuestionOutput
	Err      error
}

// AnsweredMsg bubbles to the app model so it can refresh the dashboard when
// configured to do so.
type AnsweredMsg struct {
	Result practicedto.AnswerOutput
	Err    error
}

type advanceMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port PracticePort

	question    practicedto.QuestionOutput
	hasQuestion bool
	result      practicedto.AnswerOutput
	hasResult   bool
	submitting  bool
	fetching    bool

	questDone    bool
	autoAdvance  bool
	advanceDelay time.Duration

	input   textinput.Model
	spinner spinner.Model
	toast   components.Toast
	errMsg  string
	width   int
	height  int
}

func New(port PracticePort, autoAdvance bool, advanceDelay time.Duration) Model {
	input := textinput.New()
	input.Placeholder = "type your answer"
	input.CharLimit = 256
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:         port,
		autoAdvance:  autoAdvance,
		advanceDelay: advanceDelay,
		input:        input,
		spinner:      sp,
		toast:        components.NewToast(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Enter readies the view each time it becomes active. Without a question in
// hand it fetches one immediately, unless the quest is already done.
func (m *Model) Enter(questDone bool) tea.Cmd {
	m.questDone = questDone
	m.errMsg = ""
	if !m.hasQuestion && !m.questDone {
		return m.fetchCmd()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case QuestionLoadedMsg:
		m.fetching = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.question = msg.Question
		m.hasQuestion = true
		m.hasResult = false
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case AnsweredMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			m.input.Focus()
			return m, nil
		}
		if !msg.Result.Submitted {
			return m, nil
		}
		m.result = msg.Result
		m.hasResult = true
		m.input.Blur()
		if msg.Result.Correct {
			cmds = append(cmds, m.toast.Show("Correct! 🎉", components.ToastCelebrate, 2500*time.Millisecond))
		}
		if msg.Result.QuestCompleted {
			m.questDone = true
			cmds = append(cmds, m.toast.ShowAfter("Quest complete! 🏆", components.ToastQuest,
				time.Second, 2500*time.Millisecond))
		}
		if m.autoAdvance && !m.questDone {
			cmds = append(cmds, tea.Tick(m.advanceDelay, func(time.Time) tea.Msg {
				return advanceMsg{}
			}))
		}
		return m, tea.Batch(cmds...)

	case advanceMsg:
		return m.advance()

	case components.ShowToastMsg, components.ToastExpiredMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.hasResult {
				return m.advance()
			}
			return m.submit()
		case "ctrl+n":
			return m.advance()
		}
	}

	if !m.hasResult && !m.submitting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Practice") + "\n\n")

	switch {
	case m.questDone && !m.hasQuestion:
		sb.WriteString(theme.Good.Render("Today's quest is complete. Come back tomorrow!") + "\n")
	case m.fetching:
		sb.WriteString(m.spinner.View() + " Fetching a question…\n")
	case !m.hasQuestion:
		sb.WriteString(theme.Muted.Render("No question yet.") + "\n")
	default:
		sb.WriteString(theme.Hot.Render(fmt.Sprintf("Level %d", m.question.Difficulty)) + "\n\n")
		sb.WriteString(m.question.Text + "\n\n")
		sb.WriteString(m.input.View() + "\n\n")

		if m.submitting {
			sb.WriteString(m.spinner.View() + " Checking…\n")
		}
		if m.hasResult {
			if m.result.Correct {
				sb.WriteString(theme.Good.Render("Correct!"))
			} else {
				sb.WriteString(theme.Bad.Render("Not quite."))
			}
			sb.WriteString(theme.Muted.Render(fmt.Sprintf("  similarity %d%%", m.result.SimilarityPct)) + "\n")
		}
	}

	if m.errMsg != "" {
		sb.WriteString(theme.Bad.Render(m.errMsg) + "\n")
	}

	hint := "enter: submit  esc: dashboard"
	if m.hasResult {
		hint = "enter: next question  esc: dashboard"
	}
	sb.WriteString("\n" + theme.Muted.Render(hint))

	pane := theme.PaneActive.Width(min(m.width-4, 72)).Render(sb.String())
	if m.toast.Visible() {
		pane = lipgloss.JoinVertical(lipgloss.Center, m.toast.View(), pane)
	}
	if m.width == 0 {
		return pane
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) submit() (Model, tea.Cmd) {
	if !m.hasQuestion || m.submitting || m.hasResult {
		return m, nil
	}
	answer := strings.TrimSpace(m.input.Value())
	if answer == "" {
		return m, nil
	}
	m.submitting = true
	m.errMsg = ""
	return m, func() tea.Msg {
		result, err := m.port.Answer(context.Background(), practicedto.AnswerInput{Answer: answer})
		return AnsweredMsg{Result: result, Err: err}
	}
}

func (m Model) advance() (Model, tea.Cmd) {
	if m.submitting || m.fetching {
		return m, nil
	}
	if m.questDone {
		m.hasQuestion = false
		m.hasResult = false
		return m, nil
	}
	cmd := m.fetchCmd()
	return m, cmd
}

func (m *Model) fetchCmd() tea.Cmd {
	m.fetching = true
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		question, err := port.Next(context.Background())
		return QuestionLoadedMsg{Question: question, Err: err}
	})
}
