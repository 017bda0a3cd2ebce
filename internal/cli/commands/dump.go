package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/geostack-labs/fgbscope/internal/fgb"
	"github.com/geostack-labs/fgbscope/internal/geo"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file|url>",
		Short: "Print the header to stdout",
		Long: `Decode the FlatGeobuf header and print it as plain text, without
entering the interactive UI. This is also what the root command does
when stdout is not a terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunInspect(cmd, args[0], true)
		},
	}
}

// writeDump renders the decoded header as labeled lines plus a column
// schema table.
func writeDump(w io.Writer, hdr *fgb.Header, ext geo.Extent, src *fgb.Source) error {
	line := func(label, value string) {
		fmt.Fprintf(w, "%-16s %s\n", label+":", value)
	}

	size := "Unknown"
	if src.Size > 0 {
		size = humanize.Bytes(uint64(src.Size))
	}
	bounds := "Undefined"
	if hdr.HasEnvelope() {
		bounds = fmt.Sprintf("[%g, %g, %g, %g]", hdr.Envelope[0], hdr.Envelope[1], hdr.Envelope[2], hdr.Envelope[3])
	}
	features := "Unknown"
	if hdr.FeaturesCount != 0 {
		features = fmt.Sprintf("%d", hdr.FeaturesCount)
	}
	index := "No Spatial Index"
	if hdr.IndexNodeSize != 0 {
		index = fmt.Sprintf("node size %d", hdr.IndexNodeSize)
	}

	line("Source", src.Name)
	line("Name", hdr.Name)
	line("File Size", size)
	line("Description", hdr.Description)
	line("Features", features)
	line("Bounds", bounds)
	line("Geometry Type", hdr.GeometryType.String())
	line("Spatial Index", index)
	line("CRS", hdr.Crs.String())
	line("Dimensions", fmt.Sprintf("z=%t m=%t t=%t tm=%t", hdr.HasZ, hdr.HasM, hdr.HasT, hdr.HasTM))
	if hdr.Metadata != "" {
		line("Metadata", hdr.Metadata)
	}

	if len(hdr.Columns) > 0 {
		fmt.Fprintf(w, "\nColumns (%d):\n", len(hdr.Columns))
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Name", "Type", "Description", "Nullable", "Unique", "Primary Key"})
		for _, c := range hdr.Columns {
			t.AppendRow(table.Row{c.Name, c.Type.String(), c.Description, c.Nullable, c.Unique, c.PrimaryKey})
		}
		t.Render()
	}

	for _, note := range ext.Notes {
		fmt.Fprintf(w, "note: %s\n", note)
	}
	return nil
}
