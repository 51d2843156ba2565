package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/profilemd/internal/render"
	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

// isolate points every config search path at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	t.Setenv("PROFILEMD_LANGUAGE", "")
	t.Setenv("PROFILEMD_USERNAME", "")
	t.Setenv("PROFILEMD_OUTPUT_FORMAT", "")
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderFlags(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "render",
		"--set", "name=Ada",
		"--set", "username=ada",
		"--set", "language=PT-BR",
		"--skill", "languages:Go",
		"--skill", "lang:Go",
		"--skill", "tools:Docker",
		"--social", "github=https://github.com/ada",
		"--addon", "streak=false",
		"--addon", "trophies",
		"--project", "Engine|Analytical, general purpose|https://example.com",
		"--project", "Notes",
	)
	require.NoError(t, err)

	st := store.NewDefault()
	st.SetField(store.FieldName, "Ada")
	st.SetField(store.FieldUsername, "ada")
	st.SetField(store.FieldLanguage, "pt-br")
	st.ToggleSkill(models.Languages, "Go")
	st.ToggleSkill(models.Tools, "Docker")
	st.SetSocial(models.GitHub, "https://github.com/ada")
	st.SetAddon(models.AddonStreak, false)
	st.SetAddon(models.AddonTrophies, true)
	require.NoError(t, st.RemoveProject(1))
	require.NoError(t, st.RemoveProject(0))
	st.AddProject()
	require.NoError(t, st.SetProjectField(0, models.ProjectName, "Engine"))
	require.NoError(t, st.SetProjectField(0, models.ProjectDescription, "Analytical, general purpose"))
	require.NoError(t, st.SetProjectField(0, models.ProjectLink, "https://example.com"))
	st.AddProject()
	require.NoError(t, st.SetProjectField(1, models.ProjectName, "Notes"))

	require.Equal(t, render.Markdown(st.Snapshot()), out)
}

func TestRenderJSONFromSeed(t *testing.T) {
	dir := isolate(t)
	seed := filepath.Join(dir, "profile.toml")
	require.NoError(t, os.WriteFile(seed, []byte("name = \"Grace\"\nusername = \"grace\"\n[skills]\nlanguages = [\"Go\", \"Go\"]\n"), 0o600))

	out, _, err := run(t, "render", "--from", seed, "--output", "json")
	require.NoError(t, err)

	var doc struct {
		Profile  models.Profile `json:"profile"`
		Markdown string         `json:"markdown"`
		Hash     string         `json:"hash"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, "Grace", doc.Profile.Name)
	require.Equal(t, []string{"Go"}, doc.Profile.Skills.Languages)
	require.Equal(t, render.Markdown(doc.Profile), doc.Markdown)
	require.Equal(t, doc.Profile.Hash(), doc.Hash)
}

func TestRenderUsesConfigDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("PROFILEMD_USERNAME", "octocat")
	t.Setenv("PROFILEMD_LANGUAGE", "pt-br")
	out, _, err := run(t, "render")
	require.NoError(t, err)
	require.Contains(t, out, "Olá, eu sou User")
	require.Contains(t, out, render.StatsURL("octocat"))
}

func TestRenderOutFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "out", "README.md")
	out, errOut, err := run(t, "render", "--set", "name=Ada", "--out", path)
	require.NoError(t, err)
	require.Empty(t, out)
	require.Contains(t, errOut, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Ada 👋")
}

func TestRenderBadFlags(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{
		{"render", "--skill", "hobbies:chess"},
		{"render", "--skill", "languages"},
		{"render", "--set", "nickname=x"},
		{"render", "--social", "myspace=x"},
		{"render", "--addon", "stats=maybe"},
		{"render", "--output", "html"},
		{"render", "--from", "/does/not/exist.toml"},
	} {
		_, _, err := run(t, args...)
		require.Error(t, err, strings.Join(args, " "))
	}
}

func TestSkillsCommand(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "skills", "tools")
	require.NoError(t, err)
	require.Contains(t, out, "category")
	require.Contains(t, out, "Docker")
	require.NotContains(t, out, "Python")

	out, _, err = run(t, "skills", "--search", "docker", "--output", "json")
	require.NoError(t, err)
	var items []struct {
		Category string `json:"category"`
		Skill    string `json:"skill"`
		Icon     string `json:"icon"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.NotEmpty(t, items)
	require.Equal(t, "Docker", items[0].Skill)
	require.Equal(t, "docker", items[0].Icon)

	_, _, err = run(t, "skills", "hobbies")
	require.Error(t, err)
}

func TestConfigGenerateAndCheck(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg", "config.toml")

	out, _, err := run(t, "config", "generate", "--output", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path)

	_, _, err = run(t, "config", "generate", "--output", path)
	require.Error(t, err)

	out, _, err = run(t, "config", "generate", "--output", path, "--update")
	require.NoError(t, err)
	require.Contains(t, out, "Config already up to date")

	out, _, err = run(t, "--config", path, "config", "check")
	require.NoError(t, err)
	require.Contains(t, out, "Config OK ("+path+")")

	t.Setenv("PROFILEMD_LANGUAGE", "klingon")
	t.Setenv("PROFILEMD_OUTPUT_FORMAT", "html")
	_, _, err = run(t, "config", "check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "language must be en or pt-br")
	require.Contains(t, err.Error(), "output.format must be markdown, pretty or json")
}

func TestCompletionGenerate(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "completion", "generate", "bash")
	require.NoError(t, err)
	require.Contains(t, out, "profilemd")

	_, _, err = run(t, "completion", "generate", "tcsh")
	require.Error(t, err)
}

func TestProfileEditsApplyOrder(t *testing.T) {
	st := store.NewDefault()
	e := profileEdits{projects: []string{"Only"}}
	require.NoError(t, e.apply(st))
	p := st.Snapshot()
	require.Len(t, p.Projects, 1)
	require.Equal(t, models.Project{Name: "Only"}, p.Projects[0])

	st = store.NewDefault()
	require.NoError(t, profileEdits{}.apply(st))
	require.Equal(t, 2, st.Len(), "no --project keeps the seed projects")
}
