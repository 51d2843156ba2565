package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/pkg/models"
)

func TestWritePlainSkills(t *testing.T) {
	var buf bytes.Buffer
	matches := []catalog.Match{
		{Category: models.Languages, Skill: "C++"},
		{Category: models.Frameworks, Skill: "Node.js"},
	}
	require.NoError(t, WritePlainSkills(&buf, matches, true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"category", "skill", "icon"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"languages", "C++", "cplusplus"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"frameworks", "Node.js", "nodejs"}, strings.Fields(lines[2]))

	buf.Reset()
	require.NoError(t, WritePlainSkills(&buf, matches, false))
	require.NotContains(t, buf.String(), "category")
}

func TestNewDocument(t *testing.T) {
	p := models.Default()
	d := NewDocument(p)
	require.Equal(t, p.Hash(), d.Hash)
	require.Contains(t, d.Markdown, "Project 1")
}
