package models

import (
	"fmt"
	"strings"
)

// Locale selects the label set used when rendering.
type Locale string

const (
	LocaleEN   Locale = "en"
	LocalePTBR Locale = "pt-br"
)

// SkillCategory is one of the three fixed skill groupings.
type SkillCategory int

const (
	Languages SkillCategory = iota
	Frameworks
	Tools
)

// SkillCategories returns the categories in render order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{Languages, Frameworks, Tools}
}

func (c SkillCategory) String() string {
	switch c {
	case Languages:
		return "languages"
	case Frameworks:
		return "frameworks"
	case Tools:
		return "tools"
	default:
		return fmt.Sprintf("SkillCategory(%d)", int(c))
	}
}

// ParseSkillCategory parses "languages", "frameworks" or "tools".
// Singular forms are accepted as well.
func ParseSkillCategory(s string) (SkillCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "languages", "language", "lang":
		return Languages, nil
	case "frameworks", "framework":
		return Frameworks, nil
	case "tools", "tool":
		return Tools, nil
	}
	return 0, fmt.Errorf("unknown skill category %q (want languages, frameworks or tools)", s)
}

// Platform is a social link key.
type Platform string

const (
	GitHub   Platform = "github"
	LinkedIn Platform = "linkedin"
	Twitter  Platform = "twitter"
	Website  Platform = "website"
	Email    Platform = "email"
)

// Platforms returns the social keys in render order.
func Platforms() []Platform {
	return []Platform{GitHub, LinkedIn, Twitter, Website, Email}
}

// ParsePlatform maps user input onto one of the known platforms.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown social platform %q", s)
}

// Addon toggles an optional stats image.
type Addon int

const (
	AddonStats Addon = iota
	AddonStreak
	AddonTrophies
)

func (a Addon) String() string {
	switch a {
	case AddonStats:
		return "stats"
	case AddonStreak:
		return "streak"
	case AddonTrophies:
		return "trophies"
	default:
		return fmt.Sprintf("Addon(%d)", int(a))
	}
}

// ParseAddon parses "stats", "streak" or "trophies".
func ParseAddon(s string) (Addon, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stats", "displaystats":
		return AddonStats, nil
	case "streak", "displaystreak":
		return AddonStreak, nil
	case "trophies", "displaytrophies":
		return AddonTrophies, nil
	}
	return 0, fmt.Errorf("unknown addon %q (want stats, streak or trophies)", s)
}

// ProjectField names one editable field of a Project.
type ProjectField int

const (
	ProjectName ProjectField = iota
	ProjectDescription
	ProjectLink
)

func (f ProjectField) String() string {
	switch f {
	case ProjectName:
		return "name"
	case ProjectDescription:
		return "description"
	case ProjectLink:
		return "link"
	default:
		return fmt.Sprintf("ProjectField(%d)", int(f))
	}
}

// Skills holds the three ordered skill selections. Order is toggle order
// and entries are unique within a category.
type Skills struct {
	Languages  []string `json:"languages" mapstructure:"languages"`
	Frameworks []string `json:"frameworks" mapstructure:"frameworks"`
	Tools      []string `json:"tools" mapstructure:"tools"`
}

// In returns the selection for a category. The slice is shared.
func (s Skills) In(c SkillCategory) []string {
	switch c {
	case Frameworks:
		return s.Frameworks
	case Tools:
		return s.Tools
	default:
		return s.Languages
	}
}

// All concatenates languages, frameworks and tools.
func (s Skills) All() []string {
	out := make([]string, 0, len(s.Languages)+len(s.Frameworks)+len(s.Tools))
	out = append(out, s.Languages...)
	out = append(out, s.Frameworks...)
	return append(out, s.Tools...)
}

func (s Skills) Empty() bool {
	return len(s.Languages) == 0 && len(s.Frameworks) == 0 && len(s.Tools) == 0
}

// Socials maps each known platform to a link; empty means "not shown".
type Socials struct {
	GitHub   string `json:"github" mapstructure:"github"`
	LinkedIn string `json:"linkedin" mapstructure:"linkedin"`
	Twitter  string `json:"twitter" mapstructure:"twitter"`
	Website  string `json:"website" mapstructure:"website"`
	Email    string `json:"email" mapstructure:"email"`
}

// Get returns the link stored for p.
func (s Socials) Get(p Platform) string {
	switch p {
	case GitHub:
		return s.GitHub
	case LinkedIn:
		return s.LinkedIn
	case Twitter:
		return s.Twitter
	case Website:
		return s.Website
	case Email:
		return s.Email
	}
	return ""
}

// Set stores link for p. Unknown platforms are ignored.
func (s *Socials) Set(p Platform, link string) {
	switch p {
	case GitHub:
		s.GitHub = link
	case LinkedIn:
		s.LinkedIn = link
	case Twitter:
		s.Twitter = link
	case Website:
		s.Website = link
	case Email:
		s.Email = link
	}
}

// Addons are the stats display toggles.
type Addons struct {
	DisplayStats    bool `json:"displayStats" mapstructure:"displayStats"`
	DisplayStreak   bool `json:"displayStreak" mapstructure:"displayStreak"`
	DisplayTrophies bool `json:"displayTrophies" mapstructure:"displayTrophies"`
}

func (a Addons) Get(x Addon) bool {
	switch x {
	case AddonStats:
		return a.DisplayStats
	case AddonStreak:
		return a.DisplayStreak
	case AddonTrophies:
		return a.DisplayTrophies
	}
	return false
}

func (a *Addons) Set(x Addon, on bool) {
	switch x {
	case AddonStats:
		a.DisplayStats = on
	case AddonStreak:
		a.DisplayStreak = on
	case AddonTrophies:
		a.DisplayTrophies = on
	}
}

// Any reports whether at least one toggle is on.
func (a Addons) Any() bool {
	return a.DisplayStats || a.DisplayStreak || a.DisplayTrophies
}

// Project is one featured project line.
type Project struct {
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
	Link        string `json:"link" mapstructure:"link"`
}

func (p Project) Get(f ProjectField) string {
	switch f {
	case ProjectDescription:
		return p.Description
	case ProjectLink:
		return p.Link
	default:
		return p.Name
	}
}

func (p *Project) Set(f ProjectField, value string) {
	switch f {
	case ProjectName:
		p.Name = value
	case ProjectDescription:
		p.Description = value
	case ProjectLink:
		p.Link = value
	}
}

// Profile is everything the user entered for one README.
type Profile struct {
	Name     string    `json:"name" mapstructure:"name"`
	Subtitle string    `json:"subtitle" mapstructure:"subtitle"`
	Bio      string    `json:"bio" mapstructure:"bio"`
	Language Locale    `json:"language" mapstructure:"language"`
	Username string    `json:"username" mapstructure:"username"`
	Skills   Skills    `json:"skills" mapstructure:"skills"`
	Socials  Socials   `json:"socials" mapstructure:"socials"`
	Addons   Addons    `json:"addons" mapstructure:"addons"`
	Projects []Project `json:"projects" mapstructure:"projects"`
}

// Default returns the state a new editing session starts from.
func Default() Profile {
	return Profile{
		Language: LocaleEN,
		Skills: Skills{
			Languages:  []string{},
			Frameworks: []string{},
			Tools:      []string{},
		},
		Addons: Addons{DisplayStats: true, DisplayStreak: true},
		Projects: []Project{
			{Name: "Project 1", Description: "A cool project"},
			{Name: "Project 2", Description: "Another cool project"},
		},
	}
}

// Clone returns a deep copy; the result shares no slices with p.
func (p Profile) Clone() Profile {
	out := p
	out.Skills = Skills{
		Languages:  append([]string{}, p.Skills.Languages...),
		Frameworks: append([]string{}, p.Skills.Frameworks...),
		Tools:      append([]string{}, p.Skills.Tools...),
	}
	out.Projects = append([]Project{}, p.Projects...)
	return out
}
