package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mithrel/profilemd/internal/present/format"
	"github.com/mithrel/profilemd/internal/present/tui"
)

func newEditCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive profile form",
		Long:  "Open the interactive profile form. ctrl+s prints the markdown and exits, esc quits without output.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, from)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "seed profile document (toml|yaml|json)")
	return cmd
}

func runForm(cmd *cobra.Command, from string) error {
	app := getApp(cmd)
	st, err := app.NewSession(from)
	if err != nil {
		return err
	}

	unmute := app.Mute()
	res, err := tui.Run(cmd.Context(), st, formOptions(app.Cfg))
	unmute()
	if err != nil {
		return fmt.Errorf("form: %w", err)
	}

	app.Log.Debug("form closed", zap.Bool("saved", res.Saved), zap.String("hash", res.Profile.Hash()))
	if !res.Saved {
		return nil
	}
	return format.WriteMarkdown(cmd.OutOrStdout(), res.Markdown)
}
