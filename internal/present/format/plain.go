package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/internal/render"
)

// TSV columns: category, skill, icon
var headerLine = "category\tskill\ticon\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// WritePlainSkills writes catalog matches as aligned columns.
func WritePlainSkills(w io.Writer, matches []catalog.Match, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, m := range matches {
		line := fmt.Sprintf("%s\t%s\t%s\n", m.Category, esc(m.Skill), render.IconName(m.Skill))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}
