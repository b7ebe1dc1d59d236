// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800

	// Fixed simulation step. The loop drains wall-clock debt in TickRate
	// increments and discards anything beyond MaxAccumulatorTicks steps
	// per frame.
	TickRate            = 1.0 / 60.0
	MaxAccumulatorTicks = 5
	// MaxDeltaTime caps the wall-clock delta fed into a single frame, so
	// a debugger pause or window drag does not turn into a time jump.
	MaxDeltaTime = 0.25

	MaxLives           = 3
	WaveCount          = 15
	WaveTransitionTime = 3.0

	SpatialCellSize = 64.0

	// Missiles launch 20% over their nominal speed.
	MissileLaunchBoost  = 1.2
	MissileImpactRadius = 12.0
	MissileMaxLifetime  = 45.0
	MissileTrailLength  = 12
	// Margin outside the screen within which a missile is still alive.
	PlayfieldMargin = 60.0

	// Damage applied to a target when the colliding missile carries none.
	FallbackMissileDamage = 10

	ProjectileSpeed       = 420.0
	ProjectileMaxLifetime = 4.0
	ProjectileHitRadius   = 10.0

	// Health band thresholds as fractions of max health.
	HealthyThreshold  = 0.7
	CriticalThreshold = 0.3

	DamageFlashDuration = 0.25

	// Scoring.
	ScorePerSecond      = 2.0
	WaveCompletionBonus = 100
	WaveMultiplierStep  = 0.1
	PerfectVictoryBonus = 0.5
	PartialVictoryBonus = 0.2
	MultiplierMax       = 3.0

	ClickCooldown = 300 // ms, UI debounce

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
)

// Wave generation formulas. Counts grow, intervals shrink, difficulty
// climbs monotonically with the wave number.
const (
	BaseMissileCount       = 4
	MissileCountPerWave    = 2
	BaseSpawnInterval      = 2.2
	SpawnIntervalDecrement = 0.12
	MinSpawnInterval       = 0.5
	DifficultyPerWave      = 0.12
	BossWaveEvery          = 5
	SpeedBurstChance       = 0.25
	SpeedBurstFactor       = 1.5
	MultiSpawnChance       = 0.35
	BossDifficultyBonus    = 0.5
)

var (
	BackgroundColor = color.RGBA{16, 18, 28, 255}
	GroundColor     = color.RGBA{30, 34, 48, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 155, 170, 255}
	TrailColor      = color.RGBA{255, 180, 80, 90}
	RangeRingColor  = color.RGBA{90, 140, 200, 60}
	ChargeBarColor  = color.RGBA{80, 200, 255, 220}
	EnergyBarColor  = color.RGBA{255, 215, 0, 220}
	HealthGoodColor = color.RGBA{80, 220, 100, 255}
	HealthWarnColor = color.RGBA{240, 200, 60, 255}
	HealthCritColor = color.RGBA{230, 70, 70, 255}
	FlashColor      = color.RGBA{255, 255, 255, 160}
	ModalDimColor   = color.RGBA{0, 0, 0, 180}
	PauseStateColor = color.RGBA{70, 130, 180, 220}
	BossWaveColor   = color.RGBA{220, 60, 60, 255}
	UIColorBlue     = color.RGBA{90, 160, 240, 255}
)
