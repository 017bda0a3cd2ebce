package commands

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/geostack-labs/fgbscope/internal/fgb"
	"github.com/geostack-labs/fgbscope/internal/geo"
	"github.com/geostack-labs/fgbscope/internal/tui"
)

// RunInspect acquires the source, decodes the header, and hands off to
// the TUI — or to the plain dump when asked for, or when stdout is not
// a terminal. Decode and source errors abort here, before any
// interactive state exists.
func RunInspect(cmd *cobra.Command, arg string, forceDump bool) error {
	cfg, logger := sessionFrom(cmd)

	src, err := fgb.Open(cmd.Context(), arg, fgb.OpenOptions{
		Timeout:   cfg.HTTP.Timeout(),
		UserAgent: cfg.HTTP.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer src.Close()

	hdr, err := fgb.DecodeHeader(src)
	if err != nil {
		return err
	}
	ext := geo.ExtentFromHeader(hdr, logger)

	if forceDump || !term.IsTerminal(int(os.Stdout.Fd())) {
		return writeDump(cmd.OutOrStdout(), hdr, ext, src)
	}

	m := tui.New(hdr, ext, tui.Options{
		SourceName: src.Name,
		ByteSize:   src.Size,
		Accent:     cfg.Theme.Accent,
		Highlight:  cfg.Theme.Highlight,
		MapRows:    cfg.Map.Rows,
		MapCols:    cfg.Map.Cols,
	})

	watchPath := ""
	if src.Local && cfg.Watch {
		watchPath = src.Path
	}
	return tui.Run(m, watchPath, logger)
}
