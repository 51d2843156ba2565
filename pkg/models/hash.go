package models

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the profile content.
// Every field that can change the rendered document is included, in a
// fixed order, each terminated by a NUL byte.
func (p Profile) Hash() string {
	h := blake3.New()
	field := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}

	field(p.Name)
	field(p.Subtitle)
	field(p.Bio)
	field(string(p.Language))
	field(p.Username)

	// Category lengths keep ["a"],[] apart from [],["a"].
	for _, c := range SkillCategories() {
		skills := p.Skills.In(c)
		field(strconv.Itoa(len(skills)))
		for _, s := range skills {
			field(s)
		}
	}

	for _, pl := range Platforms() {
		field(p.Socials.Get(pl))
	}

	field(strconv.FormatBool(p.Addons.DisplayStats))
	field(strconv.FormatBool(p.Addons.DisplayStreak))
	field(strconv.FormatBool(p.Addons.DisplayTrophies))

	field(strconv.Itoa(len(p.Projects)))
	for _, pr := range p.Projects {
		field(pr.Name)
		field(pr.Description)
		field(pr.Link)
	}

	return hex.EncodeToString(h.Sum(nil))
}
