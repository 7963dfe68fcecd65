package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldConfig describes the generated world: extent, building placement
// ranges, cosmetic road rectangles and fixed spawn points. Roads are not
// collision-checked; only buildings block movement.
type WorldConfig struct {
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`

	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`

	NPCCount int `yaml:"npc_count"`

	// Downtown grid of buildings: one building per (x, y) grid cell,
	// jittered by up to GridJitter pixels.
	Grid GridConfig `yaml:"grid"`

	// Additional buildings scattered over the whole map.
	ScatteredCount   int     `yaml:"scattered_count"`
	ScatteredMinSize float64 `yaml:"scattered_min_size"`
	ScatteredMaxSize float64 `yaml:"scattered_max_size"`

	Roads []Rect `yaml:"roads"`

	CarSpawn    Vec2 `yaml:"car_spawn"`
	MarkerStart Vec2 `yaml:"marker_start"`
}

// GridConfig bounds the downtown building grid.
type GridConfig struct {
	XStart float64 `yaml:"x_start"`
	XEnd   float64 `yaml:"x_end"`
	XStep  float64 `yaml:"x_step"`
	YStart float64 `yaml:"y_start"`
	YEnd   float64 `yaml:"y_end"`
	YStep  float64 `yaml:"y_step"`

	Jitter    float64 `yaml:"jitter"`
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// DefaultWorldConfig returns the stock city layout.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		WorldWidth:     DefaultWorldWidth,
		WorldHeight:    DefaultWorldHeight,
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
		NPCCount:       DefaultNPCCount,
		Grid: GridConfig{
			XStart: 900, XEnd: 1700, XStep: 320,
			YStart: 500, YEnd: 1100, YStep: 260,
			Jitter:    30,
			MinWidth:  120, MaxWidth: 180,
			MinHeight: 100, MaxHeight: 180,
		},
		ScatteredCount:   6,
		ScatteredMinSize: 80,
		ScatteredMaxSize: 180,
		Roads: []Rect{
			{X: 0, Y: 900, W: DefaultWorldWidth, H: 160},
			{X: 400, Y: 0, W: 200, H: DefaultWorldHeight},
			{X: 1200, Y: 1200, W: 1000, H: 140},
			{X: 2000, Y: 200, W: 300, H: DefaultWorldHeight},
		},
		CarSpawn:    Vec2{X: 430, Y: 30},
		MarkerStart: Vec2{X: 2200, Y: 1600},
	}
}

// LoadWorldConfig reads a YAML world config, applying defaults for any
// field the file leaves unset.
func LoadWorldConfig(path string) (WorldConfig, error) {
	cfg := DefaultWorldConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("world config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("world config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configs the generator cannot place agents in.
func (c WorldConfig) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("world extent must be positive, got %gx%g", c.WorldWidth, c.WorldHeight)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.ViewportWidth, c.ViewportHeight)
	}
	if c.NPCCount < 0 {
		return fmt.Errorf("npc_count must not be negative, got %d", c.NPCCount)
	}
	return nil
}
