package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Hash(t *testing.T) {
	base := Default()
	base.Name = "Ada"
	base.Username = "ada"
	base.Skills.Languages = []string{"Go", "C++"}
	base.Socials.Twitter = "https://twitter.com/x"

	t.Run("identical profiles produce identical hashes", func(t *testing.T) {
		assert.Equal(t, base.Hash(), base.Clone().Hash())
	})

	t.Run("skill order matters", func(t *testing.T) {
		p := base.Clone()
		p.Skills.Languages = []string{"C++", "Go"}
		assert.NotEqual(t, base.Hash(), p.Hash())
	})

	t.Run("category boundaries are kept apart", func(t *testing.T) {
		p1 := Default()
		p1.Skills.Languages = []string{"Go"}

		p2 := Default()
		p2.Skills.Frameworks = []string{"Go"}

		assert.NotEqual(t, p1.Hash(), p2.Hash())
	})

	t.Run("different content produces different hashes", func(t *testing.T) {
		p1 := base.Clone()
		p1.Subtitle = "Gopher"

		p2 := base.Clone()
		p2.Addons.DisplayTrophies = true

		p3 := base.Clone()
		p3.Projects = p3.Projects[:1]

		assert.NotEqual(t, base.Hash(), p1.Hash())
		assert.NotEqual(t, base.Hash(), p2.Hash())
		assert.NotEqual(t, base.Hash(), p3.Hash())
	})

	t.Run("empty skills vs nil skills", func(t *testing.T) {
		p1 := Default()
		p1.Skills.Tools = []string{}

		p2 := Default()
		p2.Skills.Tools = nil

		assert.Equal(t, p1.Hash(), p2.Hash(), "Empty slice and nil slice should result in same hash")
	})
}

func TestProfile_Clone(t *testing.T) {
	p := Default()
	p.Skills.Tools = append(p.Skills.Tools, "Git")

	c := p.Clone()
	c.Skills.Tools[0] = "Docker"
	c.Projects[0].Name = "changed"

	assert.Equal(t, "Git", p.Skills.Tools[0])
	assert.Equal(t, "Project 1", p.Projects[0].Name)
}

func TestParseEnums(t *testing.T) {
	c, err := ParseSkillCategory(" Frameworks ")
	assert.NoError(t, err)
	assert.Equal(t, Frameworks, c)

	_, err = ParseSkillCategory("databases")
	assert.Error(t, err)

	p, err := ParsePlatform("LinkedIn")
	assert.NoError(t, err)
	assert.Equal(t, LinkedIn, p)

	_, err = ParsePlatform("myspace")
	assert.Error(t, err)

	a, err := ParseAddon("trophies")
	assert.NoError(t, err)
	assert.Equal(t, AddonTrophies, a)
}
