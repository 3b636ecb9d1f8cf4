package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
	"github.com/ironsheep/pixels-mcp/internal/segment"
)

func newAbstractCmd(a *app) *cobra.Command {
	var (
		paletteSize int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "abstract <input> <output>",
		Short: "Posterise an image into flat regions of average color",
		Long: `Merge connected pixels of similar color into regions and paint each region
with its average color.

A region grows from its first pixel to every 4-connected neighbor whose
summed R, G and B difference from that first pixel is below the threshold.
The output format follows the output file extension.

Examples:
  # Abstract with the default threshold of 100
  pixels abstract photo.jpg flat.png

  # Coarser regions and the ten largest listed as JSON
  pixels abstract --threshold 200 --palette 10 --json photo.jpg flat.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAbstract(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], paletteSize, asJSON)
		},
	}

	cmd.Flags().IntVarP(&paletteSize, "palette", "p", 8, "number of largest regions to list (0 to skip)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print statistics as JSON")

	return cmd
}

func (a *app) runAbstract(ctx context.Context, out io.Writer, inPath, outPath string, paletteSize int, asJSON bool) error {
	if paletteSize < 0 {
		return fmt.Errorf("invalid --palette: must not be negative, got %d", paletteSize)
	}
	metric, err := a.cfg.Metric()
	if err != nil {
		return err
	}

	src, err := imaging.NewImageCache().Load(inPath)
	if err != nil {
		return err
	}
	a.log.Debug().Str("path", inPath).Int("width", src.Width()).Int("height", src.Height()).Msg("image loaded")

	if ctx == nil {
		ctx = context.Background()
	}
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := segment.AbstractBuffer(ctx, src, segment.Options{Metric: metric, PaletteSize: paletteSize})
	if err != nil {
		if result != nil && result.Partial {
			return fmt.Errorf("abstract incomplete (%d of %d pixels): %w", result.Visited, src.Len(), err)
		}
		return err
	}
	a.log.Info().
		Int("regions", result.Regions).
		Int("threshold", metric.Threshold).
		Dur("elapsed", time.Since(start)).
		Msg("abstract complete")

	if err := imaging.Save(result.Image.Image(), outPath); err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*segment.Result
			Threshold  int    `json:"threshold"`
			OutputPath string `json:"output_path"`
		}{result, metric.Threshold, outPath})
	}

	fmt.Fprintf(out, "Wrote %s (%dx%d)\n", outPath, result.Width, result.Height)
	fmt.Fprintf(out, "Threshold: %d\n", metric.Threshold)
	fmt.Fprintf(out, "Regions:   %d (largest %d pixels)\n", result.Regions, result.LargestRegion)
	if len(result.Palette) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Largest regions:")
		for _, p := range result.Palette {
			fmt.Fprintf(out, "  %s  %6.2f%%  %d px  seed (%d,%d)\n", p.Hex, p.Percentage, p.Pixels, p.Seed.X, p.Seed.Y)
		}
	}
	return nil
}
