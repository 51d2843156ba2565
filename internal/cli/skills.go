package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/profilemd/internal/catalog"
	"github.com/mithrel/profilemd/internal/present/format"
	"github.com/mithrel/profilemd/internal/render"
	"github.com/mithrel/profilemd/internal/ui"
	"github.com/mithrel/profilemd/pkg/models"
)

func newSkillsCmd() *cobra.Command {
	var search string
	var limit int
	var output string
	var noHeaders bool
	cmd := &cobra.Command{
		Use:       "skills [category]",
		Short:     "List the selectable skills, optionally fuzzy-filtered",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"languages", "frameworks", "tools"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var matches []catalog.Match
			if len(args) == 1 {
				c, err := models.ParseSkillCategory(args[0])
				if err != nil {
					return err
				}
				for _, s := range catalog.SearchCategory(c, search, limit) {
					matches = append(matches, catalog.Match{Category: c, Skill: s})
				}
			} else {
				matches = catalog.Search(search, limit)
			}

			switch output {
			case "json":
				type item struct {
					Category string `json:"category"`
					Skill    string `json:"skill"`
					Icon     string `json:"icon"`
				}
				items := make([]item, 0, len(matches))
				for _, m := range matches {
					items = append(items, item{Category: m.Category.String(), Skill: m.Skill, Icon: render.IconName(m.Skill)})
				}
				return format.WriteJSON(cmd.OutOrStdout(), items, true)
			case "table":
				sel, ok, err := ui.PickSkill(cmd.Context(), matches)
				if err != nil || !ok {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", sel.Category, sel.Skill)
				return err
			case "plain", "":
				return format.WritePlainSkills(cmd.OutOrStdout(), matches, !noHeaders)
			default:
				return fmt.Errorf("unknown output %q (plain|json|table)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "fuzzy filter")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (0 = all)")
	cmd.Flags().StringVarP(&output, "output", "o", "plain", "output format: plain|json|table (table picks one skill interactively)")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit the header row in plain output")
	return cmd
}

// completeSkillFlag completes --skill values as category:name.
func completeSkillFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat, name, ok := strings.Cut(toComplete, ":")
	if !ok {
		var out []string
		for _, c := range models.SkillCategories() {
			out = append(out, c.String()+":")
		}
		return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
	c, err := models.ParseSkillCategory(cat)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, s := range catalog.SearchCategory(c, name, 20) {
		out = append(out, cat+":"+s)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
