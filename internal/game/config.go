package game

// Screen (logical pixels). The desktop window scales this up.
const (
	ScreenWidth  = 400
	ScreenHeight = 600
	TickRate     = 60
)

// Car sprites share one size.
const (
	CarWidth  = 45
	CarHeight = 90
)

// Track bounds for the player car.
const (
	TrackLeft  = 80
	TrackRight = 320
)

// Player spawn (centre of the car).
const (
	PlayerStartX = ScreenWidth / 2
	PlayerStartY = ScreenHeight - 100
)

// Enemy pool and spawning.
const (
	EnemyCount     = 3
	SpawnMinY      = -900
	SpawnMaxY      = -100
	MaxSpeedOffset = 3
)

// Speed ramp.
const (
	BaseSpeed      = 6
	ScorePerStep   = 15
	NitroSpeedGain = 8
	SteerSpeed     = 6
	NitroSteer     = 10
)

// Resources.
const (
	InitialLives      = 3
	NitroMax          = 100.0
	NitroDrainPerTick = 1.2
	NitroRegenPerTick = 0.4
	HitCooldownTicks  = 60
)

// Invincibility flicker: visible for BlinkVisible ticks of every BlinkPeriod.
const (
	BlinkPeriod  = 10
	BlinkVisible = 5
)
