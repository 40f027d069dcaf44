// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strokegraph/stroke"
)

// app carries the state shared by the subcommands.
type app struct {
	configPath string
	flags      Config // flag values; applied only when Changed
	cfg        Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	def := DefaultConfig()

	root := &cobra.Command{
		Use:           "strokegraph",
		Short:         "Reduce stroke images to skeleton graphs",
		Long:          "strokegraph turns binary stroke images into segments and loops and reports their geometry.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.Float64Var(&a.flags.Threshold, "threshold", def.Threshold, "luminance below which a pixel is ink (0..1)")
	pf.IntVar(&a.flags.Connectivity, "connectivity", def.Connectivity, "component connectivity, 4 or 8")
	pf.BoolVar(&a.flags.PruneNoise, "prune-noise", def.PruneNoise, "remove spurs and short parallel segments")
	pf.IntVar(&a.flags.MaxLoopSegments, "max-loop-segments", def.MaxLoopSegments, "loop search depth in segments")
	pf.IntVar(&a.flags.SummaryDegree, "summary-degree", def.SummaryDegree, "polynomial degree of the longest-segment fit")
	pf.StringVar(&a.flags.LogLevel, "log-level", def.LogLevel, "debug, info, warn or error")

	root.AddCommand(newAnalyzeCmd(a), newConfigCmd(a))

	return root
}

// load builds the effective config and installs the pipeline logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		if err := loadConfigFile(a.configPath, &cfg); err != nil {
			return err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("threshold") {
		cfg.Threshold = a.flags.Threshold
	}
	if fs.Changed("connectivity") {
		cfg.Connectivity = a.flags.Connectivity
	}
	if fs.Changed("prune-noise") {
		cfg.PruneNoise = a.flags.PruneNoise
	}
	if fs.Changed("max-loop-segments") {
		cfg.MaxLoopSegments = a.flags.MaxLoopSegments
	}
	if fs.Changed("summary-degree") {
		cfg.SummaryDegree = a.flags.SummaryDegree
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	level, _ := cfg.level()
	stroke.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	a.cfg = cfg

	return nil
}
