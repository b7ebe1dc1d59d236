// internal/defs/defenses.go
package defs

import (
	"image/color"
	"log"
)

// EnergyStats describes the internal energy pool of energy-gated defenses.
type EnergyStats struct {
	Max         float64 `yaml:"max"`
	RegenRate   float64 `yaml:"regen_rate"` // per second
	CostPerShot float64 `yaml:"cost_per_shot"`
	MinToFire   float64 `yaml:"min_to_fire"`
}

// DefenseDefinition holds all the static data for a specific type of defense.
type DefenseDefinition struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	Icon          string        `yaml:"icon"`
	Range         float64       `yaml:"range"`
	Damage        int           `yaml:"damage"`
	CooldownTime  float64       `yaml:"cooldown_time"`
	ChargeTime    float64       `yaml:"charge_time"`
	TargetingMode TargetingMode `yaml:"targeting_mode"`
	Energy        *EnergyStats  `yaml:"energy,omitempty"`
	Visuals       Visuals       `yaml:"visuals"`
}

// DefaultDefenseID is the row unknown defense type keys resolve to.
const DefaultDefenseID = "DEFENSE_TURRET"

// DefenseDefs is the library of all defense definitions, keyed by ID.
var DefenseDefs = map[string]DefenseDefinition{
	"DEFENSE_TURRET": {
		ID:            "DEFENSE_TURRET",
		Name:          "Turret",
		Icon:          "⌖",
		Range:         180,
		Damage:        15,
		CooldownTime:  1.2,
		ChargeTime:    0.3,
		TargetingMode: TargetNearest,
		Visuals:       Visuals{Color: color.RGBA{110, 170, 240, 255}, Radius: 12, StrokeWidth: 2},
	},
	"DEFENSE_RAILGUN": {
		ID:            "DEFENSE_RAILGUN",
		Name:          "Railgun",
		Icon:          "║",
		Range:         260,
		Damage:        40,
		CooldownTime:  3.0,
		ChargeTime:    1.2,
		TargetingMode: TargetStrongest,
		Visuals:       Visuals{Color: color.RGBA{200, 120, 250, 255}, Radius: 13, StrokeWidth: 2},
	},
	"DEFENSE_INTERCEPTOR": {
		ID:            "DEFENSE_INTERCEPTOR",
		Name:          "Interceptor",
		Icon:          "✈",
		Range:         220,
		Damage:        12,
		CooldownTime:  0.8,
		ChargeTime:    0.2,
		TargetingMode: TargetFastest,
		Visuals:       Visuals{Color: color.RGBA{90, 230, 200, 255}, Radius: 11, StrokeWidth: 2},
	},
	"DEFENSE_FLAK": {
		ID:            "DEFENSE_FLAK",
		Name:          "Flak Battery",
		Icon:          "✺",
		Range:         150,
		Damage:        8,
		CooldownTime:  2.0,
		ChargeTime:    0.5,
		TargetingMode: TargetMultiple,
		Visuals:       Visuals{Color: color.RGBA{240, 170, 80, 255}, Radius: 12, StrokeWidth: 2},
	},
	"DEFENSE_PULSE": {
		ID:            "DEFENSE_PULSE",
		Name:          "Pulse Array",
		Icon:          "◎",
		Range:         130,
		Damage:        6,
		CooldownTime:  2.5,
		ChargeTime:    0.8,
		TargetingMode: TargetAll,
		Energy: &EnergyStats{
			Max:         100,
			RegenRate:   12,
			CostPerShot: 35,
			MinToFire:   30,
		},
		Visuals: Visuals{Color: color.RGBA{255, 215, 90, 255}, Radius: 14, StrokeWidth: 2},
	},
}

// DefenseDef resolves a defense type key, falling back to the default row
// for unknown keys.
func DefenseDef(id string) DefenseDefinition {
	if def, ok := DefenseDefs[id]; ok {
		return def
	}
	log.Printf("defs: unknown defense type %q, using %s", id, DefaultDefenseID)
	return DefenseDefs[DefaultDefenseID]
}
