package cli

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/mithrel/profilemd/internal/present"
	"github.com/mithrel/profilemd/internal/present/tui"
	"github.com/mithrel/profilemd/pkg/models"
)

const defaultPager = "less -FRSX"

// renderProfile writes p in the requested mode. Pretty output goes through
// $PAGER when out is a terminal.
func renderProfile(ctx context.Context, out, errOut io.Writer, p models.Profile, opts present.Options) error {
	if opts.Mode != present.ModePretty {
		return present.RenderProfile(ctx, out, p, opts)
	}
	return withPager(ctx, out, errOut, func(w io.Writer) error {
		return present.RenderProfile(ctx, w, p, opts)
	})
}

func withPager(ctx context.Context, out, errOut io.Writer, write func(io.Writer) error) error {
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return write(out)
	}
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = defaultPager
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", pager)
	cmd.Stdout = outFile
	if errFile, ok := errOut.(*os.File); ok {
		cmd.Stderr = errFile
	} else {
		cmd.Stderr = os.Stderr
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := cmd.Start(); err != nil {
		return write(out)
	}
	writeErr := write(stdin)
	_ = stdin.Close()
	waitErr := cmd.Wait()
	if writeErr != nil {
		return writeErr
	}
	return waitErr
}

func formOptions(v *viper.Viper) tui.Options {
	return tui.Options{
		Style:         v.GetString("preview.style"),
		WordWrap:      v.GetInt("preview.word_wrap"),
		Clipboard:     v.GetBool("clipboard.enabled"),
		EditorCommand: v.GetString("editor.command"),
	}
}

func presentOptions(v *viper.Viper, mode present.Mode) present.Options {
	return present.Options{
		Mode:       mode,
		JSONIndent: true,
		Style:      v.GetString("preview.style"),
		WordWrap:   v.GetInt("preview.word_wrap"),
		TUI:        formOptions(v),
	}
}
