package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/profilemd/pkg/models"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	faintStyle       = lipgloss.NewStyle().Faint(true)
	paneStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

func (m *model) applyLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	formW := m.width / 2
	previewW := m.width - formW - 4
	bodyH := max(6, m.height-4)

	inputW := max(12, formW-16)
	for i := range m.profileInputs {
		m.profileInputs[i].Width = inputW
	}
	for i := range m.socialInputs {
		m.socialInputs[i].Width = inputW
	}
	for i := range m.projectInputs {
		m.projectInputs[i].Width = inputW
	}
	m.skillFilter.Width = inputW
	m.bio.SetWidth(max(12, formW-6))

	m.preview.Width = max(10, previewW)
	m.preview.Height = bodyH
}

func (m model) View() string {
	base := m.viewBase()
	if m.notice != nil {
		return m.renderOverlay(base, m.notice.View(), m.notice.width, m.notice.height)
	}
	return base
}

func (m model) viewBase() string {
	formW := 40
	if m.width > 0 {
		formW = m.width / 2
	}
	form := paneStyle.Width(max(20, formW-2)).Render(m.viewTab())
	preview := paneStyle.Width(m.preview.Width).Render(m.preview.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewTabs(),
		lipgloss.JoinHorizontal(lipgloss.Top, form, preview),
		m.renderFooter(),
	)
}

func (m model) viewTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m model) viewTab() string {
	switch m.tab {
	case tabProfile:
		return m.viewProfile()
	case tabSkills:
		return m.viewSkills()
	case tabSocials:
		return joinInputs(m.socialInputs, len(m.socialInputs))
	case tabProjects:
		return m.viewProjects()
	case tabAddons:
		return m.viewAddons()
	}
	return ""
}

func (m model) viewProfile() string {
	var b strings.Builder
	for _, in := range m.profileInputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\nbio (ctrl+e opens your editor)\n")
	b.WriteString(m.bio.View())
	return b.String()
}

func (m model) viewSkills() string {
	snap := m.st.Snapshot()
	lines := []string{m.skillFilter.View(), ""}

	// keep the cursor visible in a fixed window
	window := max(5, m.preview.Height-6)
	start := 0
	if m.skillCursor >= window {
		start = m.skillCursor - window + 1
	}
	end := min(len(m.skillList), start+window)
	for i := start; i < end; i++ {
		sk := m.skillList[i]
		box := "[ ]"
		if slices.Contains(snap.Skills.In(sk.Category), sk.Skill) {
			box = selectedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s %s", box, sk.Skill, faintStyle.Render(sk.Category.String()))
		if i == m.skillCursor {
			line = cursorStyle.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(m.skillList) == 0 {
		lines = append(lines, faintStyle.Render("(no matching skills)"))
	}
	lines = append(lines, "", faintStyle.Render(selectedSummary(snap.Skills)))
	return strings.Join(lines, "\n")
}

func selectedSummary(s models.Skills) string {
	all := s.All()
	if len(all) == 0 {
		return "no skills selected"
	}
	return "selected: " + strings.Join(all, ", ")
}

func (m model) viewProjects() string {
	if len(m.projectInputs) == 0 {
		return faintStyle.Render("no projects (ctrl+n adds one)")
	}
	var b strings.Builder
	n := len(projectFields)
	for i := 0; i < len(m.projectInputs); i += n {
		fmt.Fprintf(&b, "Project %d\n", i/n+1)
		b.WriteString(joinInputs(m.projectInputs[i:i+n], n))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewAddons() string {
	snap := m.st.Snapshot()
	labels := map[models.Addon]string{
		models.AddonStats:    "GitHub stats and top languages",
		models.AddonStreak:   "GitHub streak",
		models.AddonTrophies: "GitHub trophies",
	}
	var lines []string
	for i, a := range addonOrder {
		box := "[ ]"
		if snap.Addons.Get(a) {
			box = selectedStyle.Render("[x]")
		}
		prefix := "  "
		if i == m.addonCursor {
			prefix = cursorStyle.Render(">") + " "
		}
		lines = append(lines, prefix+box+" "+labels[a])
	}
	if snap.Username == "" {
		lines = append(lines, "", faintStyle.Render("set a username to show stats"))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderFooter() string {
	left := "tab/alt+1-5=switch • ctrl+y=copy • ctrl+p=preview mode • ctrl+s=save & exit • esc=quit"
	if m.tab == tabProjects {
		left = "ctrl+n=add project • ctrl+d=remove • " + left
	}

	var right string
	if m.status != "" {
		right = m.status + " • "
	}
	mode := "raw"
	if m.pretty {
		mode = "pretty"
	}
	right += mode + " "

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return faintStyle.Render(left) + strings.Repeat(" ", space) + right
}

func joinInputs[T interface{ View() string }](ins []T, n int) string {
	views := make([]string, 0, n)
	for _, in := range ins[:n] {
		views = append(views, in.View())
	}
	return strings.Join(views, "\n")
}
