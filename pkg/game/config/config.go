// Package config loads game settings from a YAML file layered over defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	engineinput "gridsnake/pkg/engine/input"
	"gridsnake/pkg/engine/world"
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// Config holds every tunable of a run.
type Config struct {
	Title      string              `yaml:"title" json:"title"`
	Field      FieldConfig         `yaml:"field" json:"field"`
	Movement   MovementConfig      `yaml:"movement" json:"movement"`
	TickPeriod time.Duration       `yaml:"tick_period" json:"tick_period"`
	Seed       int64               `yaml:"seed" json:"seed"`
	Renderer   string              `yaml:"renderer" json:"renderer"`
	Locale     string              `yaml:"locale" json:"locale"`
	RecordDir  string              `yaml:"record_dir" json:"record_dir,omitempty"`
	Bindings   map[string][]string `yaml:"bindings" json:"bindings,omitempty"`
}

// FieldConfig describes the play field in world units.
type FieldConfig struct {
	Width    float64 `yaml:"width" json:"width"`
	Height   float64 `yaml:"height" json:"height"`
	CellSize float64 `yaml:"cell_size" json:"cell_size"`
}

// MovementConfig holds the step accumulator settings.
type MovementConfig struct {
	Threshold int `yaml:"threshold" json:"threshold"`
	Speed     int `yaml:"speed" json:"speed"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Title: "Snake!",
		Field: FieldConfig{
			Width:    500,
			Height:   500,
			CellSize: 20,
		},
		Movement: MovementConfig{
			Threshold: 10,
			Speed:     1,
		},
		TickPeriod: 100 * time.Millisecond,
		Renderer:   RendererEbiten,
		Locale:     "en_GB",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings the core depends on.
func (c Config) Validate() error {
	var errs []error
	if c.Field.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("field.cell_size must be positive, got %v", c.Field.CellSize))
	}
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Field.CellSize > 0 && (c.Field.Width < 2*c.Field.CellSize || c.Field.Height < 2*c.Field.CellSize) {
		errs = append(errs, fmt.Errorf("field %vx%v is smaller than two cells", c.Field.Width, c.Field.Height))
	}
	if c.Movement.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("movement.threshold must be positive, got %d", c.Movement.Threshold))
	}
	if c.Movement.Speed <= 0 {
		errs = append(errs, fmt.Errorf("movement.speed must be positive, got %d", c.Movement.Speed))
	}
	// One displacement per tick only holds while speed <= threshold.
	if c.Movement.Speed > c.Movement.Threshold {
		errs = append(errs, fmt.Errorf("movement.speed %d exceeds threshold %d", c.Movement.Speed, c.Movement.Threshold))
	}
	if c.TickPeriod <= 0 {
		errs = append(errs, fmt.Errorf("tick_period must be positive, got %v", c.TickPeriod))
	}
	if c.Renderer != RendererEbiten && c.Renderer != RendererTUI {
		errs = append(errs, fmt.Errorf("unknown renderer %q", c.Renderer))
	}
	for name := range c.Bindings {
		if _, ok := engineinput.ActionByName(name); !ok {
			errs = append(errs, fmt.Errorf("bindings: unknown action %q", name))
		}
	}
	return errors.Join(errs...)
}

// WorldField returns the field geometry.
func (c Config) WorldField() world.Field {
	return world.Field{Width: c.Field.Width, Height: c.Field.Height, CellSize: c.Field.CellSize}
}

// ApplyBindings installs the configured binding overrides.
func (c Config) ApplyBindings() {
	names := make([]string, 0, len(c.Bindings))
	for name := range c.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if act, ok := engineinput.ActionByName(name); ok {
			engineinput.SetBindings(act, c.Bindings[name]...)
		}
	}
}
