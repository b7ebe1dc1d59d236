// internal/defs/targets.go
package defs

import (
	"image/color"
	"log"
)

// TargetDefinition holds all the static data for a specific type of
// protected target.
type TargetDefinition struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Icon      string  `yaml:"icon"`
	MaxHealth int     `yaml:"max_health"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Visuals   Visuals `yaml:"visuals"`
}

// DefaultTargetID is the row unknown target type keys resolve to.
const DefaultTargetID = "TARGET_CITY"

// TargetDefs is the library of all target definitions, keyed by ID.
var TargetDefs = map[string]TargetDefinition{
	"TARGET_CITY": {
		ID:        "TARGET_CITY",
		Name:      "City",
		Icon:      "⌂",
		MaxHealth: 100,
		Width:     64,
		Height:    40,
		Visuals:   Visuals{Color: color.RGBA{120, 140, 200, 255}, StrokeWidth: 2},
	},
	"TARGET_BUNKER": {
		ID:        "TARGET_BUNKER",
		Name:      "Bunker",
		Icon:      "▣",
		MaxHealth: 200,
		Width:     48,
		Height:    32,
		Visuals:   Visuals{Color: color.RGBA{130, 130, 130, 255}, StrokeWidth: 3},
	},
	"TARGET_RELAY": {
		ID:        "TARGET_RELAY",
		Name:      "Relay Station",
		Icon:      "⬡",
		MaxHealth: 60,
		Width:     36,
		Height:    48,
		Visuals:   Visuals{Color: color.RGBA{90, 200, 160, 255}, StrokeWidth: 2},
	},
}

// TargetDef resolves a target type key, falling back to the default row
// for unknown keys.
func TargetDef(id string) TargetDefinition {
	if def, ok := TargetDefs[id]; ok {
		return def
	}
	log.Printf("defs: unknown target type %q, using %s", id, DefaultTargetID)
	return TargetDefs[DefaultTargetID]
}
