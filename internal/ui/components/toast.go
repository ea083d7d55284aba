package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lbtui/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// ToastExpiredMsg dismisses the toast whose sequence number it carries.
// A stale expiry for an already-replaced toast is ignored.
type ToastExpiredMsg struct{ Seq int }

// ─── kinds ───────────────────────────────────────────────────────────────────

type ToastKind int

const (
	ToastCelebrate ToastKind = iota
	ToastQuest
	ToastInfo
	ToastError
)

// ─── component ───────────────────────────────────────────────────────────────

// Toast is a transient banner. Showing a new toast replaces the current one;
// the old expiry timer is neutralized by the sequence number check.
type Toast struct {
	seq     int
	text    string
	kind    ToastKind
	visible bool
}

func NewToast() Toast {
	return Toast{}
}

func (t *Toast) Show(text string, kind ToastKind, ttl time.Duration) tea.Cmd {
	t.seq++
	t.text = text
	t.kind = kind
	t.visible = true
	seq := t.seq
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// ShowAfter schedules a toast to appear after delay and then expire after ttl.
// Used for the quest banner, which follows the answer banner by a beat.
func (t *Toast) ShowAfter(text string, kind ToastKind, delay, ttl time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ShowToastMsg{Text: text, Kind: kind, TTL: ttl}
	})
}

// ShowToastMsg asks the owning model to display a toast. Produced by
// ShowAfter; the owner routes it back into Update.
type ShowToastMsg struct {
	Text string
	Kind ToastKind
	TTL  time.Duration
}

func (t Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowToastMsg:
		cmd := t.Show(msg.Text, msg.Kind, msg.TTL)
		return t, cmd
	case ToastExpiredMsg:
		if msg.Seq == t.seq {
			t.visible = false
		}
	}
	return t, nil
}

func (t Toast) Visible() bool { return t.visible }

func (t Toast) View() string {
	if !t.visible {
		return ""
	}
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Bold(true)
	switch t.kind {
	case ToastCelebrate:
		style = style.BorderForeground(theme.Green).Foreground(theme.Green)
	case ToastQuest:
		style = style.BorderForeground(theme.Yellow).Foreground(theme.Yellow)
	case ToastError:
		style = style.BorderForeground(theme.Red).Foreground(theme.Red)
	default:
		style = style.BorderForeground(theme.Lavender).Foreground(theme.Text)
	}
	return style.Render(t.text)
}
