// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strokegraph/gridgraph"
	"github.com/katalvlaran/strokegraph/stroke"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <image>...",
		Short: "Analyze stroke images and print a YAML report per image",
		Long: "analyze decodes each image (PNG, JPEG, GIF, BMP, TIFF or WebP), " +
			"treats pixels darker than the threshold as ink and prints the skeleton's " +
			"segments, loops and longest-segment summary. Images are processed in " +
			"parallel; reports keep the argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]Report, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					r, err := analyzeFile(path, a.cfg)
					if err != nil {
						return err
					}
					reports[i] = r

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(reports); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}

func analyzeFile(path string, cfg Config) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return Report{}, fmt.Errorf("decode %s: %w", path, err)
	}
	stroke.Logger().Debug("image decoded", "file", path, "format", format, "bounds", img.Bounds().String())

	gg, err := gridgraph.FromImage(img, cfg.Threshold, cfg.conn())
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}
	sk, err := stroke.Analyze(gg, cfg.options()...)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}

	return newReport(path, gg.Width, gg.Height, sk), nil
}
