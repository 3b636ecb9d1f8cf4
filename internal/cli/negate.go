package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
)

func newNegateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "negate <input> <output>",
		Short: "Invert the red, green and blue channels of an image",
		Long: `Replace every channel value v with 255-v. Alpha is left unchanged.

Example:
  pixels negate photo.png negative.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runNegate(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func (a *app) runNegate(out io.Writer, inPath, outPath string) error {
	src, err := imaging.NewImageCache().Load(inPath)
	if err != nil {
		return err
	}

	neg := imaging.NegateBuffer(src)
	if err := imaging.Save(neg.Image(), outPath); err != nil {
		return err
	}
	a.log.Info().Str("input", inPath).Str("output", outPath).Msg("negate complete")

	fmt.Fprintf(out, "Wrote %s (%dx%d)\n", outPath, neg.Width(), neg.Height())
	return nil
}
