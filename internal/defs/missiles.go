// internal/defs/missiles.go
package defs

import (
	"image/color"
	"log"
)

// MissileDefinition holds all the static data for a specific type of missile.
type MissileDefinition struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Icon         string       `yaml:"icon"`
	Speed        float64      `yaml:"speed"`
	Damage       int          `yaml:"damage"`
	ScoreValue   int          `yaml:"score_value"`
	ThreatWeight float64      `yaml:"threat_weight"` // targeting priority multiplier
	Acceleration float64      `yaml:"acceleration"`  // per-second speed multiplier for DIRECT movement
	MovementType MovementType `yaml:"movement_type"`
	Visuals      Visuals      `yaml:"visuals"`
}

// DefaultMissileID is the row unknown missile type keys resolve to.
const DefaultMissileID = "MISSILE_STANDARD"

// MissileDefs is the library of all missile definitions, keyed by ID.
var MissileDefs = map[string]MissileDefinition{
	"MISSILE_STANDARD": {
		ID:           "MISSILE_STANDARD",
		Name:         "Standard",
		Icon:         "▲",
		Speed:        60,
		Damage:       10,
		ScoreValue:   50,
		ThreatWeight: 1.0,
		Acceleration: 1.0,
		MovementType: MovementDirect,
		Visuals:      Visuals{Color: color.RGBA{230, 120, 60, 255}, Radius: 6},
	},
	"MISSILE_SWIFT": {
		ID:           "MISSILE_SWIFT",
		Name:         "Swift",
		Icon:         "⇶",
		Speed:        110,
		Damage:       8,
		ScoreValue:   80,
		ThreatWeight: 1.1,
		Acceleration: 1.2,
		MovementType: MovementDirect,
		Visuals:      Visuals{Color: color.RGBA{250, 210, 70, 255}, Radius: 5},
	},
	"MISSILE_HUNTER": {
		ID:           "MISSILE_HUNTER",
		Name:         "Hunter",
		Icon:         "◉",
		Speed:        75,
		Damage:       14,
		ScoreValue:   120,
		ThreatWeight: 1.5, // homing threats get priority
		Acceleration: 1.0,
		MovementType: MovementSeeking,
		Visuals:      Visuals{Color: color.RGBA{220, 70, 180, 255}, Radius: 7},
	},
	"MISSILE_CHAOS": {
		ID:           "MISSILE_CHAOS",
		Name:         "Chaos",
		Icon:         "✸",
		Speed:        85,
		Damage:       12,
		ScoreValue:   100,
		ThreatWeight: 1.2,
		Acceleration: 1.0,
		MovementType: MovementErratic,
		Visuals:      Visuals{Color: color.RGBA{120, 220, 90, 255}, Radius: 6},
	},
	"MISSILE_JUGGERNAUT": {
		ID:           "MISSILE_JUGGERNAUT",
		Name:         "Juggernaut",
		Icon:         "⬢",
		Speed:        35,
		Damage:       30,
		ScoreValue:   250,
		ThreatWeight: 0.8, // slow movers rank low despite raw damage
		Acceleration: 1.0,
		MovementType: MovementSlow,
		Visuals:      Visuals{Color: color.RGBA{160, 60, 60, 255}, Radius: 11},
	},
}

// MissileDef resolves a missile type key. Unknown keys never fail: they
// resolve to the default row and are logged as informational only.
func MissileDef(id string) MissileDefinition {
	if def, ok := MissileDefs[id]; ok {
		return def
	}
	log.Printf("defs: unknown missile type %q, using %s", id, DefaultMissileID)
	return MissileDefs[DefaultMissileID]
}
