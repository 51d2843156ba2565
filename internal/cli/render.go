package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mithrel/profilemd/internal/present"
)

func newRenderCmd() *cobra.Command {
	var (
		from   string
		output string
		out    string
		edits  profileEdits
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a profile README without the form",
		Example: `  profilemd render --set name=Ada --set username=ada --skill languages:Go
  profilemd render --from profile.toml --output json
  profilemd render --project "profilemd|README generator|https://github.com/mithrel/profilemd" --out README.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, map[string]string{
				"output": "output.format",
				"style":  "preview.style",
				"wrap":   "preview.word_wrap",
			})

			st, err := app.NewSession(from)
			if err != nil {
				return err
			}
			if err := edits.apply(st); err != nil {
				return err
			}

			modeName := app.Cfg.GetString("output.format")
			mode, ok := present.ParseMode(modeName)
			if !ok {
				return fmt.Errorf("unknown output format %q (markdown|pretty|json|tui)", modeName)
			}
			opts := presentOptions(app.Cfg, mode)
			p := st.Snapshot()
			app.Log.Debug("render", zap.String("mode", mode.String()), zap.String("hash", p.Hash()))

			if out == "" {
				return renderProfile(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), p, opts)
			}
			var buf bytes.Buffer
			if err := present.RenderProfile(cmd.Context(), &buf, p, opts); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "seed profile document (toml|yaml|json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: markdown|pretty|json|tui (default from config)")
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	cmd.Flags().String("style", "", "glamour style for pretty output")
	cmd.Flags().Int("wrap", 0, "word wrap for pretty output")
	cmd.Flags().StringArrayVar(&edits.sets, "set", nil, "set a field: name|subtitle|bio|language|username=value (repeatable)")
	cmd.Flags().StringArrayVar(&edits.skills, "skill", nil, "add a skill as category:name (repeatable)")
	cmd.Flags().StringArrayVar(&edits.socials, "social", nil, "set a social link as platform=url (repeatable)")
	cmd.Flags().StringArrayVar(&edits.addons, "addon", nil, "toggle an addon as stats|streak|trophies=bool (repeatable)")
	cmd.Flags().StringArrayVar(&edits.projects, "project", nil, `add a project as "name|description|link"; replaces the seed projects (repeatable)`)

	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"markdown", "pretty", "json", "tui"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("skill", completeSkillFlag)
	return cmd
}
