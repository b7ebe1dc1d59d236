// internal/defs/types.go
package defs

import "image/color"

// MovementType selects the per-tick steering algorithm of a missile.
type MovementType string

const (
	MovementDirect  MovementType = "DIRECT"
	MovementSeeking MovementType = "SEEKING"
	MovementErratic MovementType = "ERRATIC"
	MovementSlow    MovementType = "SLOW"
)

// TargetingMode selects which in-range missiles a defense engages.
type TargetingMode string

const (
	TargetNearest   TargetingMode = "NEAREST"
	TargetStrongest TargetingMode = "STRONGEST"
	TargetFastest   TargetingMode = "FASTEST"
	TargetMultiple  TargetingMode = "MULTIPLE"
	TargetAll       TargetingMode = "ALL"
)

// SpecialEvent tags a wave with a one-shot spawn/stat modifier.
type SpecialEvent string

const (
	EventBossWave   SpecialEvent = "boss_wave"
	EventSpeedBurst SpecialEvent = "speed_burst"
	EventMultiSpawn SpecialEvent = "multi_spawn"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color       color.RGBA `yaml:"color"`
	Radius      float64    `yaml:"radius"`
	StrokeWidth float64    `yaml:"stroke_width"`
}
