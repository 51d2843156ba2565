package main

import (
	"encoding/json"
	"fmt"
	mrand "math/rand"
	"os"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

// Writes a sample seed profile for `profilemd render --from`.
func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	st := store.NewDefault()
	st.SetField(store.FieldName, "Sample User")
	st.SetField(store.FieldSubtitle, "Full-stack developer")
	st.SetField(store.FieldBio, "I build things for the web and the terminal.")
	st.SetField(store.FieldUsername, "octocat")

	for _, c := range models.SkillCategories() {
		// 1–4 unique skills per category
		k := 1 + mr.Intn(4)
		for _, s := range sample(mr, catalog.Skills(c), k) {
			st.ToggleSkill(c, s)
		}
	}

	st.SetSocial(models.GitHub, "https://github.com/octocat")
	if mr.Float64() < 0.5 {
		st.SetSocial(models.Website, "https://example.com")
	}
	st.SetAddon(models.AddonTrophies, mr.Float64() < 0.3)

	for i := 0; i < st.Len(); i++ {
		_ = st.SetProjectField(i, models.ProjectLink, fmt.Sprintf("https://github.com/octocat/project-%d", i+1))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st.Snapshot()); err != nil {
		panic(err)
	}
}

func sample(r *mrand.Rand, pool []string, k int) []string {
	if k >= len(pool) {
		k = len(pool)
	}
	idx := r.Perm(len(pool))[:k]
	out := make([]string, k)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}
