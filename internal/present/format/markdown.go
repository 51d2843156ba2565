package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// WriteMarkdown writes the rendered document verbatim.
func WriteMarkdown(w io.Writer, md string) error {
	_, err := io.WriteString(w, md)
	return err
}

// Pretty renders markdown for the terminal with glamour.
type Pretty struct {
	r *glamour.TermRenderer
}

// NewPretty builds a glamour renderer for the given style and wrap width.
// Style "auto" picks dark or light from the terminal background.
func NewPretty(style string, wrap int) (*Pretty, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "auto" || style == "" {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(wrap),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return &Pretty{r: r}, nil
}

// Render returns the ANSI rendering of md.
func (p *Pretty) Render(md string) (string, error) {
	out, err := p.r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// WritePretty renders md with glamour and writes the result to w.
func WritePretty(w io.Writer, md, style string, wrap int) error {
	p, err := NewPretty(style, wrap)
	if err != nil {
		return err
	}
	out, err := p.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
