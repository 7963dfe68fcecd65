package game

import "time"

// World dimensions (pixels)
const (
	DefaultWorldWidth  = 6000.0
	DefaultWorldHeight = 4000.0
)

// Viewport dimensions (pixels)
const (
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 720.0
)

// Pedestrian movement
const (
	PlayerSpeed     = 300.0  // pixels per second
	BoostSpeed      = 1200.0 // overrides PlayerSpeed while boost mode is active
	PlayerSize      = 24.0   // bounding square side
	NPCSize         = 20.0
	NPCSpeedMin     = 30.0 // per-NPC speed is drawn from [NPCSpeedMin, NPCSpeedMax]
	NPCSpeedMax     = 110.0
	DefaultNPCCount = 10
)

// Vehicle physics
const (
	CarWidth     = 56.0
	CarHeight    = 32.0
	CarMaxSpeed  = 900.0  // pixels per second
	CarAccel     = 1400.0 // forward thrust
	CarBrake     = 2600.0 // braking is applied at half strength (see vehicle.go)
	CarTurnRate  = 160.0  // degrees per second at full speed factor
	CarFriction  = 0.985  // velocity multiplier per tick
	BounceFactor = -0.35  // velocity multiplier on building impact
)

// Turn-rate speed factor: turning scales with |velocity|/TurnSpeedRef,
// clamped to [TurnFactorMin, TurnFactorMax].
const (
	TurnSpeedRef  = 200.0
	TurnFactorMin = 0.15
	TurnFactorMax = 1.2
)

// Possession
const (
	InteractRadius = 80.0 // max distance to enter a vehicle
	ExitOffset     = 70.0 // dismount distance along the vehicle's side
	ExitVelDamp    = 0.6  // residual vehicle velocity multiplier on dismount
)

// Objective marker
const (
	MarkerRadius = 100.0 // "objective reached" distance
	MarkerInset  = 200.0 // relocation margin from each world edge
)

// NPC wander
const (
	WanderTimerMin = 1.0 // seconds until the next direction change
	WanderTimerMax = 4.0
)

// Simulation timing
const (
	TickRate     = 60 // ticks per second
	TickInterval = time.Second / TickRate
)

// Spawn
const (
	SpawnMargin      = 100.0 // keep spawn points away from the world edge
	SpawnMaxAttempts = 1000  // rejection-sampling cap
)
