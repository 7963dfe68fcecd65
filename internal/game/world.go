package game

import "math/rand"

// Input is the per-tick intent bundle the simulation consumes. Axis flags
// steer whichever agent the player currently controls; Interact and
// Relocate are edge-triggered actions; Actions is the raw ordered input log
// consumed by the boost-sequence matcher; FPS is the externally measured
// frame rate, passed through to snapshots untouched.
type Input struct {
	Up, Down, Left, Right bool

	Interact bool
	Relocate bool

	Actions []string

	FPS float64
}

// World is the complete simulation state. One Step call fully completes
// before any snapshot is taken, so readers never observe a half-updated
// tick; the model is single-writer and needs no locking of its own.
type World struct {
	Cfg  WorldConfig
	Seed int64
	rng  *rand.Rand

	Buildings Obstacles
	Roads     []Rect // cosmetic only, never collision-checked

	Player *Pedestrian
	Car    *Vehicle
	NPCs   []*NPC

	Camera Camera

	Marker        Vec2
	MarkerReached bool

	Boost BoostDetector

	Tick uint64
	FPS  float64
}

// Step advances the simulation by dt seconds. dt is measured by the caller,
// not assumed, so the logic holds at any tick size. Update order: input
// log, possession, vehicle, player, NPCs, camera, marker.
func (w *World) Step(in Input, dt float64) {
	for _, a := range in.Actions {
		w.Boost.Feed(a)
	}
	w.Boost.Advance(dt)
	if w.Boost.Active {
		w.Player.Speed = BoostSpeed
	} else {
		w.Player.Speed = PlayerSpeed
	}

	if in.Interact {
		ToggleVehicle(w.Player, w.Car, w.Buildings, w.Cfg.WorldWidth, w.Cfg.WorldHeight)
	}

	drive := DriveInput{
		Throttle: in.Up,
		Brake:    in.Down,
		Left:     in.Left,
		Right:    in.Right,
	}
	w.Car.Update(drive, dt, w.Buildings, w.Cfg.WorldWidth, w.Cfg.WorldHeight)

	w.Player.Update(IntentFromAxes(in.Up, in.Down, in.Left, in.Right), dt,
		w.Buildings, w.Cfg.WorldWidth, w.Cfg.WorldHeight)
	if w.Player.Vehicle != nil {
		// Cosmetic parity while embedded; the player does no physics.
		w.Player.Pos = w.Car.Pos
	}

	for _, n := range w.NPCs {
		n.Update(dt, w.rng, w.Buildings, w.Cfg.WorldWidth, w.Cfg.WorldHeight)
	}

	target := w.CameraTarget()
	w.Camera.Update(target, w.Cfg.WorldWidth, w.Cfg.WorldHeight)

	w.MarkerReached = Distance(target, w.Marker) < MarkerRadius
	if w.MarkerReached && in.Relocate {
		w.RelocateMarker()
	}

	w.FPS = in.FPS
	w.Tick++
}

// CameraTarget is the followed position: the car while driving, the player
// on foot.
func (w *World) CameraTarget() Vec2 {
	if w.Player.Vehicle != nil {
		return w.Car.Pos
	}
	return w.Player.Pos
}

// InVehicle reports whether the player currently possesses the car.
func (w *World) InVehicle() bool {
	return w.Player.Vehicle != nil
}

// DistanceToMarker is the distance from the camera target to the objective.
func (w *World) DistanceToMarker() float64 {
	return Distance(w.CameraTarget(), w.Marker)
}

// RelocateMarker moves the objective to a fresh random point at least
// MarkerInset pixels from every world edge.
func (w *World) RelocateMarker() {
	w.Marker = Vec2{
		X: rangeF(w.rng, MarkerInset, w.Cfg.WorldWidth-MarkerInset),
		Y: rangeF(w.rng, MarkerInset, w.Cfg.WorldHeight-MarkerInset),
	}
}
