package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mithrel/profilemd/internal/editor"
	"github.com/mithrel/profilemd/internal/present"
	"github.com/mithrel/profilemd/internal/store"
)

var errNoChanges = errors.New("no changes made; nothing rendered")

func newNewCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write name, subtitle and bio in $EDITOR and print the markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			st, err := app.NewSession(from)
			if err != nil {
				return err
			}
			path, err := editor.PathFor("new")
			if err != nil {
				return err
			}
			initial := []byte(editor.ComposeProfile(st.Snapshot()))
			final, changed, err := editor.OpenAt(app.Cfg.GetString("editor.command"), path, initial)
			if err != nil {
				return err
			}
			if !changed {
				return errNoChanges
			}
			p := editor.ParseEditedProfile(string(final), st.Snapshot())
			app.Log.Debug("profile edited", zap.String("hash", p.Hash()))

			mode, ok := present.ParseMode(app.Cfg.GetString("output.format"))
			if !ok || mode == present.ModeTUI {
				mode = present.ModeMarkdown
			}
			return renderProfile(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), store.New(p).Snapshot(), presentOptions(app.Cfg, mode))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "seed profile document (toml|yaml|json)")
	return cmd
}
