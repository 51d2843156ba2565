package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/pkg/models"
)

func TestSkillsModelPick(t *testing.T) {
	m := newSkillsModel(catalog.Search("", 0))
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(skillsModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	fm := next.(skillsModel)

	require.Equal(t, 1, fm.chosen)
	require.Equal(t, catalog.Match{Category: models.Languages, Skill: "TypeScript"}, fm.matches[fm.chosen])
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSkillsModelQuit(t *testing.T) {
	m := newSkillsModel(catalog.Search("", 0))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, -1, next.(skillsModel).chosen)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "Go", truncate("Go", 5))
	require.Equal(t, "Kube…", truncate("Kubernetes", 5))
	require.Contains(t, newSkillsModel(nil).View(), "no skills")
}
