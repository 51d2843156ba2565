package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout()
		if m.notice != nil {
			m.notice.resizeForTerm(msg.Width, msg.Height)
		}
		return m, nil
	case copyResultMsg:
		text := "Copied to clipboard!"
		if msg.err != nil {
			text = "Copy failed: " + msg.err.Error()
		}
		m.notice = newNoticeModal(text, m.width, m.height)
		return m, noticeTimeoutCmd(m.notice.id)
	case noticeExpiredMsg:
		if m.notice != nil && m.notice.id == msg.id {
			m.notice = nil
		}
		return m, nil
	case editorFinishedMsg:
		m.applyEditorResult(msg)
		return m, nil
	case tea.KeyMsg:
		if m.notice != nil {
			// any key dismisses the notification
			m.notice = nil
			if msg.String() != "ctrl+c" {
				return m, nil
			}
		}
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	cmd := m.updateTab(msg)
	m.refreshPreview()
	return m, cmd
}

func (m *model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch key := msg.String(); key {
	case "esc", "ctrl+c":
		return tea.Quit, true
	case "ctrl+s":
		m.refreshPreview()
		m.saved = true
		return tea.Quit, true
	case "ctrl+y":
		m.refreshPreview()
		return copyCmd(m.markdown, m.opts.Clipboard), true
	case "ctrl+e":
		return m.openEditor(), true
	case "ctrl+p":
		m.pretty = !m.pretty
		m.setPreviewContent()
		return nil, true
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return cmd, true
	case "tab":
		m.switchTab((m.tab + 1) % tabCount)
		return nil, true
	case "shift+tab":
		m.switchTab((m.tab + tabCount - 1) % tabCount)
		return nil, true
	case "alt+1", "alt+2", "alt+3", "alt+4", "alt+5":
		m.switchTab(tab(key[len(key)-1] - '1'))
		return nil, true
	}
	return nil, false
}

func (m *model) switchTab(t tab) {
	m.tab = t
	m.applyFocus()
}

func (m *model) updateTab(msg tea.Msg) tea.Cmd {
	switch m.tab {
	case tabProfile:
		return m.updateProfile(msg)
	case tabSkills:
		return m.updateSkills(msg)
	case tabSocials:
		return m.updateSocials(msg)
	case tabProjects:
		return m.updateProjects(msg)
	case tabAddons:
		return m.updateAddons(msg)
	}
	return nil
}

func (m *model) updateProfile(msg tea.Msg) tea.Cmd {
	inBio := m.profileFocus == len(m.profileInputs)
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up":
			if !inBio || m.bio.Line() == 0 {
				m.profileFocus = max(0, m.profileFocus-1)
				m.applyFocus()
				return nil
			}
		case "down", "enter":
			if !inBio {
				m.profileFocus++
				m.applyFocus()
				return nil
			}
		}
	}

	var cmd tea.Cmd
	if inBio {
		m.bio, cmd = m.bio.Update(msg)
		m.st.SetField(store.FieldBio, m.bio.Value())
		return cmd
	}
	in := &m.profileInputs[m.profileFocus]
	*in, cmd = in.Update(msg)
	value := in.Value()
	if profileFields[m.profileFocus] == store.FieldLanguage {
		value = strings.ToLower(strings.TrimSpace(value))
	}
	m.st.SetField(profileFields[m.profileFocus], value)
	return cmd
}

func (m *model) updateSkills(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up":
			m.skillCursor = max(0, m.skillCursor-1)
			return nil
		case "down":
			m.skillCursor = min(len(m.skillList)-1, m.skillCursor+1)
			return nil
		case " ", "space", "enter":
			if m.skillCursor >= 0 && m.skillCursor < len(m.skillList) {
				sel := m.skillList[m.skillCursor]
				m.st.ToggleSkill(sel.Category, sel.Skill)
			}
			return nil
		}
	}
	before := m.skillFilter.Value()
	var cmd tea.Cmd
	m.skillFilter, cmd = m.skillFilter.Update(msg)
	if m.skillFilter.Value() != before {
		m.skillCursor = 0
		m.refreshSkills()
	}
	return cmd
}

func (m *model) updateSocials(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "up":
			m.socialFocus = max(0, m.socialFocus-1)
			m.applyFocus()
			return nil
		case "down", "enter":
			m.socialFocus = min(len(m.socialInputs)-1, m.socialFocus+1)
			m.applyFocus()
			return nil
		}
	}
	var cmd tea.Cmd
	in := &m.socialInputs[m.socialFocus]
	*in, cmd = in.Update(msg)
	m.st.SetSocial(models.Platforms()[m.socialFocus], strings.TrimSpace(in.Value()))
	return cmd
}

func (m *model) updateProjects(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+n":
			m.st.AddProject()
			m.syncFromStore()
			m.projectFocus = (m.st.Len() - 1) * len(projectFields)
			m.applyFocus()
			return nil
		case "ctrl+d":
			if len(m.projectInputs) == 0 {
				return nil
			}
			if err := m.st.RemoveProject(m.projectFocus / len(projectFields)); err != nil {
				m.status = err.Error()
				return nil
			}
			m.projectFocus -= m.projectFocus % len(projectFields)
			if m.projectFocus >= len(projectFields) && m.projectFocus >= m.st.Len()*len(projectFields) {
				m.projectFocus -= len(projectFields)
			}
			m.syncFromStore()
			m.applyFocus()
			return nil
		case "up":
			m.projectFocus = max(0, m.projectFocus-1)
			m.applyFocus()
			return nil
		case "down", "enter":
			m.projectFocus = max(0, min(len(m.projectInputs)-1, m.projectFocus+1))
			m.applyFocus()
			return nil
		}
	}
	if len(m.projectInputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	in := &m.projectInputs[m.projectFocus]
	*in, cmd = in.Update(msg)
	idx := m.projectFocus / len(projectFields)
	field := projectFields[m.projectFocus%len(projectFields)]
	if err := m.st.SetProjectField(idx, field, in.Value()); err != nil {
		m.status = err.Error()
	}
	return cmd
}

var addonOrder = []models.Addon{models.AddonStats, models.AddonStreak, models.AddonTrophies}

func (m *model) updateAddons(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "up":
		m.addonCursor = max(0, m.addonCursor-1)
	case "down":
		m.addonCursor = min(len(addonOrder)-1, m.addonCursor+1)
	case " ", "space", "enter", "x":
		a := addonOrder[m.addonCursor]
		m.st.SetAddon(a, !m.st.Snapshot().Addons.Get(a))
	}
	return nil
}
