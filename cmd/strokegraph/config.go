// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strokegraph/gridgraph"
	"github.com/katalvlaran/strokegraph/pixelgraph"
	"github.com/katalvlaran/strokegraph/stroke"
)

var errInvalidConfig = errors.New("invalid config")

// configValidate checks Config's validate tags.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	err := configValidate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		var l slog.Level
		return l.UnmarshalText([]byte(fl.Field().String())) == nil
	})
	if err != nil {
		panic(fmt.Sprintf("register loglevel validation: %v", err))
	}
}

// Config is the effective CLI configuration: DefaultConfig, overlaid by the
// --config file, overlaid by explicitly set flags.
type Config struct {
	// Threshold is the luminance in [0, 1] below which a pixel is ink.
	Threshold       float64 `yaml:"threshold" validate:"gte=0,lte=1"`
	Connectivity    int     `yaml:"connectivity" validate:"oneof=4 8"`
	PruneNoise      bool    `yaml:"prune_noise"`
	MaxLoopSegments int     `yaml:"max_loop_segments" validate:"gte=0"`
	SummaryDegree   int     `yaml:"summary_degree" validate:"gte=0"`
	LogLevel        string  `yaml:"log_level" validate:"loglevel"`
}

// DefaultConfig mirrors stroke.DefaultOptions with a mid-gray threshold.
func DefaultConfig() Config {
	return Config{
		Threshold:       0.5,
		Connectivity:    8,
		PruneNoise:      true,
		MaxLoopSegments: pixelgraph.DefaultMaxLoopSegments,
		SummaryDegree:   stroke.DefaultSummaryDegree,
		LogLevel:        "warn",
	}
}

// loadConfigFile overlays the YAML file at path onto cfg. Unknown keys are
// rejected.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

func (c Config) validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))

	return l, err
}

func (c Config) conn() gridgraph.Connectivity {
	if c.Connectivity == 4 {
		return gridgraph.Conn4
	}

	return gridgraph.Conn8
}

func (c Config) options() []stroke.Option {
	return []stroke.Option{
		stroke.WithMaxLoopSegments(c.MaxLoopSegments),
		stroke.WithPruneNoise(c.PruneNoise),
		stroke.WithSummaryDegree(c.SummaryDegree),
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}
