package present

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/profilemd/internal/render"
	"github.com/mithrel/profilemd/pkg/models"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"markdown": ModeMarkdown,
		"md":       ModeMarkdown,
		"pretty":   ModePretty,
		"json":     ModeJSON,
		"tui":      ModeTUI,
	} {
		got, ok := ParseMode(in)
		require.True(t, ok, in)
		require.Equal(t, want, got)
		if in != "md" {
			require.Equal(t, in, got.String())
		}
	}
	_, ok := ParseMode("html")
	require.False(t, ok)
}

func TestRenderProfileMarkdown(t *testing.T) {
	p := models.Default()
	p.Name = "Ada"
	var buf bytes.Buffer
	require.NoError(t, RenderProfile(context.Background(), &buf, p, Options{Mode: ModeMarkdown}))
	require.Equal(t, render.Markdown(p), buf.String())
}

func TestRenderProfileJSON(t *testing.T) {
	p := models.Default()
	p.Username = "ada"
	var buf bytes.Buffer
	require.NoError(t, RenderProfile(context.Background(), &buf, p, Options{Mode: ModeJSON, JSONIndent: true}))

	var doc struct {
		Profile  models.Profile `json:"profile"`
		Markdown string         `json:"markdown"`
		Hash     string         `json:"hash"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, "ada", doc.Profile.Username)
	require.Equal(t, render.Markdown(p), doc.Markdown)
	require.Equal(t, p.Hash(), doc.Hash)
}

func TestRenderProfilePretty(t *testing.T) {
	p := models.Default()
	var buf bytes.Buffer
	require.NoError(t, RenderProfile(context.Background(), &buf, p, Options{Mode: ModePretty, Style: "notty", WordWrap: 80}))
	require.Contains(t, buf.String(), "Project 1")
}

func TestRenderProfilePrettyUnknownStyle(t *testing.T) {
	var buf bytes.Buffer
	err := RenderProfile(context.Background(), &buf, models.Default(), Options{Mode: ModePretty, Style: "neon", WordWrap: 80})
	require.Error(t, err)
}
