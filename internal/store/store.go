package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mithrel/profilemd/pkg/models"
)

// ErrProjectIndex is returned when a project position is out of range.
var ErrProjectIndex = errors.New("project index out of range")

// Field is a top-level scalar of the profile.
type Field int

const (
	FieldName Field = iota
	FieldSubtitle
	FieldBio
	FieldLanguage
	FieldUsername
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldSubtitle:
		return "subtitle"
	case FieldBio:
		return "bio"
	case FieldLanguage:
		return "language"
	case FieldUsername:
		return "username"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ParseField maps "name", "subtitle", "bio", "language" or "username" to a Field.
func ParseField(s string) (Field, error) {
	for _, f := range []Field{FieldName, FieldSubtitle, FieldBio, FieldLanguage, FieldUsername} {
		if strings.EqualFold(strings.TrimSpace(s), f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown profile field %q", s)
}

// Store owns the profile of one editing session.
// It is not safe for concurrent use.
type Store struct {
	p models.Profile
}

// New returns a store seeded with a copy of p, normalized.
func New(p models.Profile) *Store {
	return &Store{p: Normalize(p)}
}

// NewDefault returns a store seeded with models.Default().
func NewDefault() *Store {
	return New(models.Default())
}

// Snapshot returns a deep copy of the current profile.
func (s *Store) Snapshot() models.Profile {
	return s.p.Clone()
}

// SetField replaces a top-level scalar. Values are not validated.
func (s *Store) SetField(f Field, value string) {
	switch f {
	case FieldName:
		s.p.Name = value
	case FieldSubtitle:
		s.p.Subtitle = value
	case FieldBio:
		s.p.Bio = value
	case FieldLanguage:
		s.p.Language = models.Locale(value)
	case FieldUsername:
		s.p.Username = value
	}
}

func (s *Store) SetSocial(p models.Platform, link string) {
	s.p.Socials.Set(p, link)
}

func (s *Store) SetAddon(a models.Addon, on bool) {
	s.p.Addons.Set(a, on)
}

// ToggleSkill removes name from the category if present, otherwise appends it.
func (s *Store) ToggleSkill(c models.SkillCategory, name string) {
	cur := s.p.Skills.In(c)
	next := make([]string, 0, len(cur)+1)
	found := false
	for _, sk := range cur {
		if sk == name {
			found = true
			continue
		}
		next = append(next, sk)
	}
	if !found {
		next = append(next, name)
	}
	switch c {
	case models.Languages:
		s.p.Skills.Languages = next
	case models.Frameworks:
		s.p.Skills.Frameworks = next
	case models.Tools:
		s.p.Skills.Tools = next
	}
}

// HasSkill reports whether name is selected in the category.
func (s *Store) HasSkill(c models.SkillCategory, name string) bool {
	for _, sk := range s.p.Skills.In(c) {
		if sk == name {
			return true
		}
	}
	return false
}

// SetProjectField updates one field of the project at index i.
func (s *Store) SetProjectField(i int, f models.ProjectField, value string) error {
	if i < 0 || i >= len(s.p.Projects) {
		return fmt.Errorf("set %s on project %d of %d: %w", f, i, len(s.p.Projects), ErrProjectIndex)
	}
	s.p.Projects[i].Set(f, value)
	return nil
}

// AddProject appends an empty project.
func (s *Store) AddProject() {
	s.p.Projects = append(s.p.Projects, models.Project{})
}

// RemoveProject deletes the project at index i; later projects shift down.
func (s *Store) RemoveProject(i int) error {
	if i < 0 || i >= len(s.p.Projects) {
		return fmt.Errorf("remove project %d of %d: %w", i, len(s.p.Projects), ErrProjectIndex)
	}
	next := make([]models.Project, 0, len(s.p.Projects)-1)
	next = append(next, s.p.Projects[:i]...)
	s.p.Projects = append(next, s.p.Projects[i+1:]...)
	return nil
}

// Len returns the number of projects.
func (s *Store) Len() int { return len(s.p.Projects) }

// Normalize returns a copy of p with the store invariants applied:
// non-nil slices and duplicate-free skill selections (first occurrence wins).
func Normalize(p models.Profile) models.Profile {
	out := p.Clone()
	out.Skills.Languages = uniqueStrings(out.Skills.Languages)
	out.Skills.Frameworks = uniqueStrings(out.Skills.Frameworks)
	out.Skills.Tools = uniqueStrings(out.Skills.Tools)
	if out.Projects == nil {
		out.Projects = []models.Project{}
	}
	return out
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
