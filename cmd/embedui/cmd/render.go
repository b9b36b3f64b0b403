package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/embedui/cmd/embedui/internal/scenario"
)

func newRenderCmd(g *globalFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render <scenario.yaml>",
		Short: "Replay a scenario and write PNG frames",
		Long: `Replay a scenario on a stepped clock and write every snapshot step as
<out>/<name>.png, plus the frame after the last step as <out>/<scenario>.png.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			e, err := loadEnv(ctx, g.dir)
			if err != nil {
				return err
			}
			f, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			res, err := scenario.Run(ctx, f, e.options(ctx))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Replayed %d steps", len(res.Rows)))

			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			var paths []string
			for _, s := range res.Snapshots {
				p := filepath.Join(out, s.Name+".png")
				if err := writePNG(p, s.Image); err != nil {
					return err
				}
				paths = append(paths, p)
			}
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			final := filepath.Join(out, base+".png")
			if err := writePNG(final, res.Final); err != nil {
				return err
			}
			paths = append(paths, final)

			w := cmd.OutOrStdout()
			printSuccess(w, "Rendered %d frames", len(paths))
			for _, p := range paths {
				printFile(w, p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	return cmd
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
