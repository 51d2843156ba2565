package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

// profileEdits collects the repeatable profile flags of `render`.
type profileEdits struct {
	sets     []string
	skills   []string
	socials  []string
	addons   []string
	projects []string
}

// apply runs every edit against st in flag order: fields, skills, socials,
// addons, then projects. Given projects replace the existing list.
func (e profileEdits) apply(st *store.Store) error {
	for _, s := range e.sets {
		k, val, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected field=value", s)
		}
		f, err := store.ParseField(k)
		if err != nil {
			return fmt.Errorf("--set: %w", err)
		}
		if f == store.FieldLanguage {
			val = strings.ToLower(strings.TrimSpace(val))
		}
		st.SetField(f, val)
	}

	for _, s := range e.skills {
		cat, name, ok := strings.Cut(s, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("--skill %q: expected category:name", s)
		}
		c, err := models.ParseSkillCategory(cat)
		if err != nil {
			return fmt.Errorf("--skill: %w", err)
		}
		if !st.HasSkill(c, name) {
			st.ToggleSkill(c, name)
		}
	}

	for _, s := range e.socials {
		k, link, ok := strings.Cut(s, "=")
		if !ok {
			return fmt.Errorf("--social %q: expected platform=url", s)
		}
		p, err := models.ParsePlatform(k)
		if err != nil {
			return fmt.Errorf("--social: %w", err)
		}
		st.SetSocial(p, strings.TrimSpace(link))
	}

	for _, s := range e.addons {
		k, raw, ok := strings.Cut(s, "=")
		if !ok {
			raw = "true"
		}
		a, err := models.ParseAddon(k)
		if err != nil {
			return fmt.Errorf("--addon: %w", err)
		}
		on, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("--addon %q: %w", s, err)
		}
		st.SetAddon(a, on)
	}

	if len(e.projects) > 0 {
		for st.Len() > 0 {
			if err := st.RemoveProject(st.Len() - 1); err != nil {
				return err
			}
		}
		for i, s := range e.projects {
			parts := strings.SplitN(s, "|", 3)
			st.AddProject()
			for j, part := range parts {
				if err := st.SetProjectField(i, projectFieldOrder[j], strings.TrimSpace(part)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

var projectFieldOrder = []models.ProjectField{models.ProjectName, models.ProjectDescription, models.ProjectLink}
