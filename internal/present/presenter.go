package present

import (
	"context"
	"fmt"
	"io"

	"github.com/mithrel/profilemd/internal/present/format"
	"github.com/mithrel/profilemd/internal/present/tui"
	"github.com/mithrel/profilemd/internal/render"
	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

type Mode int

const (
	ModeMarkdown Mode = iota
	ModePretty
	ModeJSON
	ModeTUI
)

func (m Mode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModeJSON:
		return "json"
	case ModeTUI:
		return "tui"
	default:
		return "markdown"
	}
}

type Options struct {
	Mode       Mode
	JSONIndent bool
	Style      string
	WordWrap   int
	// TUI holds the form options used by ModeTUI.
	TUI tui.Options
}

// ParseMode parses a string like "markdown", "md", "pretty", "json", "tui".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "markdown", "md", "raw":
		return ModeMarkdown, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	case "tui":
		return ModeTUI, true
	default:
		return ModeMarkdown, false
	}
}

// RenderProfile renders p according to options. ModeTUI opens the form
// seeded with p and writes the markdown only when the user saves.
func RenderProfile(ctx context.Context, w io.Writer, p models.Profile, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONDocument(w, format.NewDocument(p), opts.JSONIndent)
	case ModePretty:
		return format.WritePretty(w, render.Markdown(p), opts.Style, opts.WordWrap)
	case ModeTUI:
		res, err := tui.Run(ctx, store.New(p), opts.TUI)
		if err != nil {
			return fmt.Errorf("form: %w", err)
		}
		if !res.Saved {
			return nil
		}
		return format.WriteMarkdown(w, res.Markdown)
	default:
		return format.WriteMarkdown(w, render.Markdown(p))
	}
}
