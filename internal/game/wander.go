package game

import "math/rand"

// Wander generates movement intent for an NPC: hold a direction until the
// countdown expires, then pick a fresh random one.
type Wander struct {
	Timer float64 // seconds until the next direction change
	Dir   Vec2    // current unit direction
}

// NewWander seeds a wander state with a random direction and timer.
func NewWander(rng *rand.Rand) Wander {
	return Wander{
		Timer: wanderTimer(rng),
		Dir:   wanderDirection(rng.Float64()*2-1, rng.Float64()*2-1),
	}
}

// Intent advances the countdown by dt and returns the current direction,
// resampling it whenever the timer has run out.
func (w *Wander) Intent(dt float64, rng *rand.Rand) Vec2 {
	w.Timer -= dt
	if w.Timer <= 0 {
		w.Timer = wanderTimer(rng)
		w.Dir = wanderDirection(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return w.Dir
}

func wanderTimer(rng *rand.Rand) float64 {
	return WanderTimerMin + rng.Float64()*(WanderTimerMax-WanderTimerMin)
}

// wanderDirection normalizes a sampled vector, substituting +x for the
// zero vector so normalization is always defined.
func wanderDirection(x, y float64) Vec2 {
	v := Vec2{X: x, Y: y}
	if v.LengthSq() == 0 {
		v = Vec2{X: 1, Y: 0}
	}
	return v.Normalize()
}

// NPC couples a pedestrian body with wander intent.
type NPC struct {
	Pedestrian
	Wander Wander
}

// Update resamples wander intent as needed and runs the shared pedestrian
// movement step.
func (n *NPC) Update(dt float64, rng *rand.Rand, obstacles Obstacles, worldW, worldH float64) {
	intent := n.Wander.Intent(dt, rng)
	n.Pedestrian.Update(intent, dt, obstacles, worldW, worldH)
}
