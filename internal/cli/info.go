package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
)

func newInfoCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <image>",
		Short: "Show image dimensions and format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInfo(cmd.OutOrStdout(), args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func (a *app) runInfo(out io.Writer, path string, asJSON bool) error {
	info, err := imaging.LoadImageInfo(imaging.NewImageCache(), path)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "Size:   %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Format: %s\n", info.Format)
	fmt.Fprintf(out, "Alpha:  %t\n", info.HasAlpha)
	fmt.Fprintf(out, "Bytes:  %d\n", info.FileSizeBytes)
	return nil
}
