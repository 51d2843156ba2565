package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/profilemd/pkg/models"
)

func TestParseEditedProfile(t *testing.T) {
	input := `# comment line
Name: Ada Lovelace
Subtitle:   Analyst
Username: ada
Language: PT-BR
---
Bio line 1
# not a comment in the bio
Bio line 2
`
	got := ParseEditedProfile(input, models.Default())
	require.Equal(t, "Ada Lovelace", got.Name)
	require.Equal(t, "Analyst", got.Subtitle)
	require.Equal(t, "ada", got.Username)
	require.Equal(t, models.LocalePTBR, got.Language)
	require.Equal(t, "Bio line 1\n# not a comment in the bio\nBio line 2", got.Bio)
	require.Len(t, got.Projects, 2, "fields outside the document are kept")
}

func TestParseEditedProfileMissingHeaders(t *testing.T) {
	base := models.Default()
	base.Name = "Keep"
	got := ParseEditedProfile("---\n", base)
	require.Equal(t, "Keep", got.Name)
	require.Equal(t, models.LocaleEN, got.Language)
	require.Empty(t, got.Bio)
}

func TestComposeRoundTrip(t *testing.T) {
	p := models.Default()
	p.Name = "Grace"
	p.Subtitle = "Rear Admiral"
	p.Username = "grace"
	p.Language = models.LocalePTBR
	p.Bio = "first\n\nsecond"

	content := ComposeProfile(p)
	require.Contains(t, content, "Name: Grace\n")
	require.Contains(t, content, "---\nfirst\n\nsecond\n")

	got := ParseEditedProfile(content, models.Default())
	require.Equal(t, p.Name, got.Name)
	require.Equal(t, p.Subtitle, got.Subtitle)
	require.Equal(t, p.Username, got.Username)
	require.Equal(t, p.Language, got.Language)
	require.Equal(t, p.Bio, got.Bio)
}

func TestPathFor(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	path, err := PathFor("my profile")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "profilemd", "my-profile.profilemd.md"), path)

	path, err = PathFor("")
	require.NoError(t, err)
	require.Equal(t, "profile.profilemd.md", filepath.Base(path))
}

func TestPreferredEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "nano")
	ed, err := PreferredEditor("")
	require.NoError(t, err)
	require.Equal(t, "nano", ed)

	ed, err = PreferredEditor("code --wait")
	require.NoError(t, err)
	require.Equal(t, "code --wait", ed)
}

func TestCommandShellWrapper(t *testing.T) {
	cmd, err := Command("code --wait", "/tmp/x.md")
	require.NoError(t, err)
	require.Equal(t, "sh", filepath.Base(cmd.Path))
	require.Contains(t, strings.Join(cmd.Env, "\n"), "EDITORCMD=code --wait")
}

func TestReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.md")
	require.NoError(t, PrepareAt(path, []byte("a")))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o600))
	out, changed, err := ReadBack(path, []byte("a"))
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "b", string(out))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
