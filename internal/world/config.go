// Package world holds the static coastal geometry, the procedural
// generator, and the generated entity types (settlements, buildings,
// vehicles, water samples, debris).
package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WaterSampleStep is the fixed spatial step between water-surface
// samples. The sample set is created once at generation and its
// cardinality and x-ordering never change during a run.
const WaterSampleStep = 20.0

// Config is the static world geometry for a simulation run. X grows
// inland; Y grows upward. The ocean occupies [OceanStart, CoastStart),
// the coastal band [CoastStart, CoastEnd], and settlements are placed
// in [TownStart, TownEnd].
type Config struct {
	OceanStart  float64 `yaml:"ocean_start"`
	CoastStart  float64 `yaml:"coast_start"`
	CoastEnd    float64 `yaml:"coast_end"`
	TownStart   float64 `yaml:"town_start"`
	TownEnd     float64 `yaml:"town_end"`
	GroundLevel float64 `yaml:"ground_level"`
	SeaLevel    float64 `yaml:"sea_level"`
	EpicenterX  float64 `yaml:"epicenter_x"`
}

// DefaultConfig returns the standard run geometry.
func DefaultConfig() Config {
	return Config{
		OceanStart:  0,
		CoastStart:  1800,
		CoastEnd:    2300,
		TownStart:   2400,
		TownEnd:     4200,
		GroundLevel: 320,
		SeaLevel:    300,
		EpicenterX:  600,
	}
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("world config: %w", err)
	}
	return c, nil
}

// TownBandWidth returns the total width available for settlements.
func (c Config) TownBandWidth() float64 {
	return c.TownEnd - c.TownStart
}
