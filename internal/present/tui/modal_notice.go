package tui

import (
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

var noticeSeq int

// noticeModal is a small centered box with a one-line message, dismissed by
// any key or after noticeTTL.
type noticeModal struct {
	id     int
	text   string
	width  int
	height int
	box    lipglossv2.Style
}

func newNoticeModal(text string, termW, termH int) *noticeModal {
	noticeSeq++
	m := &noticeModal{id: noticeSeq, text: text}
	m.resizeForTerm(termW, termH)
	return m
}

func (m *noticeModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := max(lipgloss.Width(m.text)+8, 30)
	if w > termW-2 {
		w = max(10, termW-2)
	}
	m.width, m.height = w, 5
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(m.height).
		Padding(1, 2).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63")).
		Align(lipglossv2.Center)
}

func (m *noticeModal) View() string {
	help := lipgloss.NewStyle().Faint(true).Render("press any key")
	return m.box.Render(lipgloss.NewStyle().Bold(true).Render(m.text) + "\n" + help)
}
