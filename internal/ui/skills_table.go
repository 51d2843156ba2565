package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/internal/render"
)

// PickSkill opens an interactive Bubble Tea table to browse catalog skills.
// It returns the chosen skill, or ok=false when the user quit without one.
func PickSkill(ctx context.Context, matches []catalog.Match) (sel catalog.Match, ok bool, err error) {
	m := newSkillsModel(matches)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return catalog.Match{}, false, err
	}
	fm, isModel := final.(skillsModel)
	if !isModel || fm.chosen < 0 {
		return catalog.Match{}, false, nil
	}
	return fm.matches[fm.chosen], true, nil
}

type skillsModel struct {
	table   table.Model
	matches []catalog.Match
	chosen  int
}

func newSkillsModel(matches []catalog.Match) skillsModel {
	cols := []table.Column{
		{Title: "Category", Width: 12},
		{Title: "Skill", Width: 20},
		{Title: "Icon", Width: 16},
	}

	rows := make([]table.Row, 0, len(matches))
	for _, sk := range matches {
		rows = append(rows, table.Row{
			sk.Category.String(),
			truncate(sk.Skill, 20),
			truncate(render.IconName(sk.Skill), 16),
		})
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(12, max(3, len(rows)+3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return skillsModel{table: t, matches: matches, chosen: -1}
}

func (m skillsModel) Init() tea.Cmd { return nil }

func (m skillsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.matches) {
				m.chosen = idx
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m skillsModel) View() string {
	if len(m.matches) == 0 {
		return "(no skills)\n"
	}
	return m.table.View() + "\n↑/↓ to navigate • enter=pick • q=exit\n"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
