package catalog

import (
	"github.com/sahilm/fuzzy"

	"github.com/mithrel/profilemd/pkg/models"
)

var (
	languages = []string{"JavaScript", "TypeScript", "Python", "Java", "C++", "Go", "Rust", "PHP", "Ruby", "Swift", "Kotlin", "Dart"}
	frontend  = []string{"React", "Vue", "Angular", "Svelte", "Next.js", "Nuxt", "HTML5", "CSS3", "Tailwind", "Sass"}
	backend   = []string{"Node.js", "Express", "Django", "Flask", "Spring", "Rails", "Laravel"}
	tools     = []string{"Git", "Docker", "Kubernetes", "AWS", "Firebase", "Figma", "Linux", "Jenkins"}
)

// Skills returns the selectable skills for a category. Frameworks are the
// frontend list followed by the backend list. The result is a fresh slice.
func Skills(c models.SkillCategory) []string {
	switch c {
	case models.Frameworks:
		out := make([]string, 0, len(frontend)+len(backend))
		out = append(out, frontend...)
		return append(out, backend...)
	case models.Tools:
		return append([]string(nil), tools...)
	default:
		return append([]string(nil), languages...)
	}
}

// Match is one search hit.
type Match struct {
	Category models.SkillCategory `json:"-"`
	Skill    string               `json:"skill"`
}

// SearchCategory returns up to n skills of one category matching input,
// best match first. An empty input returns the whole category in catalog
// order; n <= 0 means no limit.
func SearchCategory(c models.SkillCategory, input string, n int) []string {
	return ScoreCompletions(input, Skills(c), n)
}

// Search ranks every catalog skill against input across all categories.
func Search(input string, n int) []Match {
	var cands []string
	var cats []models.SkillCategory
	for _, c := range models.SkillCategories() {
		for _, s := range Skills(c) {
			cands = append(cands, s)
			cats = append(cats, c)
		}
	}
	if input == "" {
		out := make([]Match, 0, len(cands))
		for i, s := range cands {
			out = append(out, Match{Category: cats[i], Skill: s})
		}
		return limit(out, n)
	}
	found := fuzzy.Find(input, cands)
	out := make([]Match, 0, len(found))
	for _, m := range found {
		out = append(out, Match{Category: cats[m.Index], Skill: m.Str})
	}
	return limit(out, n)
}

// ScoreCompletions returns the top n matches for the input string from the candidates list.
func ScoreCompletions(input string, candidates []string, n int) []string {
	if input == "" {
		if n > 0 && len(candidates) > n {
			return candidates[:n]
		}
		return candidates
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}

	lim := n
	if n <= 0 || len(matches) < lim {
		lim = len(matches)
	}

	out := make([]string, lim)
	for i := 0; i < lim; i++ {
		out[i] = matches[i].Str
	}
	return out
}

func limit(ms []Match, n int) []Match {
	if n > 0 && len(ms) > n {
		return ms[:n]
	}
	return ms
}
