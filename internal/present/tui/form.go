package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/internal/present/format"
	"github.com/mithrel/profilemd/internal/render"
	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

type tab int

const (
	tabProfile tab = iota
	tabSkills
	tabSocials
	tabProjects
	tabAddons
	tabCount
)

var tabNames = [tabCount]string{"Profile", "Skills", "Socials", "Projects", "Add-ons"}

// profile tab focus order; the bio textarea comes last
var profileFields = []store.Field{store.FieldLanguage, store.FieldName, store.FieldSubtitle, store.FieldUsername}

var projectFields = []models.ProjectField{models.ProjectName, models.ProjectDescription, models.ProjectLink}

// Options configures the form.
type Options struct {
	Style         string
	WordWrap      int
	Clipboard     bool
	EditorCommand string
	// Pretty starts the preview in glamour mode instead of raw markdown.
	Pretty bool
}

// Result is what the form hands back when it exits.
type Result struct {
	Saved    bool
	Markdown string
	Profile  models.Profile
}

// Run opens the form over st and blocks until the user leaves it.
func Run(ctx context.Context, st *store.Store, opts Options) (Result, error) {
	m := newModel(ctx, st, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	fm, ok := final.(model)
	if !ok {
		return Result{}, nil
	}
	snap := st.Snapshot()
	return Result{Saved: fm.saved, Markdown: fm.markdown, Profile: snap}, nil
}

type model struct {
	ctx  context.Context
	st   *store.Store
	opts Options

	tab    tab
	width  int
	height int

	profileInputs []textinput.Model
	bio           textarea.Model
	profileFocus  int

	skillFilter textinput.Model
	skillCursor int
	skillList   []catalog.Match

	socialInputs []textinput.Model
	socialFocus  int

	projectInputs []textinput.Model
	projectFocus  int

	addonCursor int

	preview     viewport.Model
	previewHash string
	pretty      bool
	renderer    *format.Pretty
	markdown    string

	notice *noticeModal
	status string
	saved  bool
}

func newModel(ctx context.Context, st *store.Store, opts Options) model {
	if opts.WordWrap <= 0 {
		opts.WordWrap = 80
	}
	m := model{
		ctx:     ctx,
		st:      st,
		opts:    opts,
		pretty:  opts.Pretty,
		preview: viewport.New(60, 20),
	}
	m.skillFilter = newInput("filter: ", "type to search skills", "")
	m.bio = textarea.New()
	m.bio.Placeholder = "A few words about you"
	m.bio.ShowLineNumbers = false
	m.bio.SetHeight(5)
	m.syncFromStore()
	m.applyFocus()
	m.refreshSkills()
	m.refreshPreview()
	return m
}

func newInput(prompt, placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.SetValue(value)
	return ti
}

// syncFromStore rebuilds every input from the current profile.
func (m *model) syncFromStore() {
	p := m.st.Snapshot()

	m.profileInputs = []textinput.Model{
		newInput("language: ", "en | pt-br", string(p.Language)),
		newInput("name: ", "Your name", p.Name),
		newInput("subtitle: ", "A passionate developer", p.Subtitle),
		newInput("username: ", "GitHub username", p.Username),
	}
	m.bio.SetValue(p.Bio)

	m.socialInputs = m.socialInputs[:0]
	for _, pl := range models.Platforms() {
		m.socialInputs = append(m.socialInputs, newInput(string(pl)+": ", "", p.Socials.Get(pl)))
	}

	m.projectInputs = m.projectInputs[:0]
	for _, pr := range p.Projects {
		for _, f := range projectFields {
			m.projectInputs = append(m.projectInputs, newInput(f.String()+": ", "", pr.Get(f)))
		}
	}
	if m.projectFocus >= len(m.projectInputs) {
		m.projectFocus = max(0, len(m.projectInputs)-1)
	}
	m.applyLayout()
}

// applyFocus focuses exactly the input that owns the keyboard on the active tab.
func (m *model) applyFocus() {
	for i := range m.profileInputs {
		m.profileInputs[i].Blur()
	}
	m.bio.Blur()
	m.skillFilter.Blur()
	for i := range m.socialInputs {
		m.socialInputs[i].Blur()
	}
	for i := range m.projectInputs {
		m.projectInputs[i].Blur()
	}

	switch m.tab {
	case tabProfile:
		if m.profileFocus < len(m.profileInputs) {
			m.profileInputs[m.profileFocus].Focus()
		} else {
			m.bio.Focus()
		}
	case tabSkills:
		m.skillFilter.Focus()
	case tabSocials:
		m.socialInputs[m.socialFocus].Focus()
	case tabProjects:
		if len(m.projectInputs) > 0 {
			m.projectInputs[m.projectFocus].Focus()
		}
	}
}

func (m *model) refreshSkills() {
	m.skillList = catalog.Search(m.skillFilter.Value(), 0)
	if m.skillCursor >= len(m.skillList) {
		m.skillCursor = max(0, len(m.skillList)-1)
	}
}

// refreshPreview re-renders the markdown when the profile changed since the
// last render.
func (m *model) refreshPreview() {
	snap := m.st.Snapshot()
	h := snap.Hash()
	if h == m.previewHash && m.markdown != "" {
		return
	}
	m.previewHash = h
	m.markdown = render.Markdown(snap)
	m.setPreviewContent()
}

func (m *model) setPreviewContent() {
	content := m.markdown
	if m.pretty {
		if m.renderer == nil {
			r, err := format.NewPretty(m.opts.Style, m.opts.WordWrap)
			if err != nil {
				m.status = err.Error()
				m.pretty = false
				m.preview.SetContent(content)
				return
			}
			m.renderer = r
		}
		if out, err := m.renderer.Render(content); err == nil {
			content = out
		} else {
			m.status = err.Error()
		}
	}
	m.preview.SetContent(content)
}

func (m model) Init() tea.Cmd { return textinput.Blink }
