package game

// DriveInput is the per-tick control state for a driven vehicle.
type DriveInput struct {
	Throttle bool // accelerate along the heading
	Brake    bool // brake / reverse at half strength
	Left     bool
	Right    bool
}

// Vehicle is the drivable car. Heading is in degrees with 0 along +x; the
// collision shape is the unrotated bounding box around the vehicle's extent.
type Vehicle struct {
	ID      string
	Pos     Vec2
	Vel     Vec2
	Heading float64 // degrees
	Width   float64
	Height  float64

	MaxSpeed float64
	Accel    float64
	Brake    float64
	TurnRate float64
	Friction float64

	// Driver is non-nil while possessed; paired with Pedestrian.Vehicle.
	Driver *Pedestrian
}

// NewVehicle creates a car at pos with the stock physical constants.
func NewVehicle(id string, pos Vec2) *Vehicle {
	return &Vehicle{
		ID:       id,
		Pos:      pos,
		Width:    CarWidth,
		Height:   CarHeight,
		MaxSpeed: CarMaxSpeed,
		Accel:    CarAccel,
		Brake:    CarBrake,
		TurnRate: CarTurnRate,
		Friction: CarFriction,
	}
}

// Bounds returns the vehicle's unrotated bounding box.
func (v *Vehicle) Bounds() Rect {
	return RectAt(v.Pos, v.Width, v.Height)
}

// Update advances the vehicle by dt seconds. Driver input only applies while
// possessed; friction, the speed clamp and collision handling always run, so
// an abandoned car coasts to a stop.
//
// Collision response is a deliberate single pass: on the first overlapping
// building the velocity is reversed and damped, the candidate position is
// recomputed from the reversed velocity and accepted without re-checking.
// In pathological geometry the accepted position can still overlap; that is
// a known limitation of the policy, not an error state.
func (v *Vehicle) Update(in DriveInput, dt float64, obstacles Obstacles, worldW, worldH float64) {
	if v.Driver != nil {
		forward := Heading(v.Heading)
		if in.Throttle {
			v.Vel = v.Vel.Add(forward.Scale(v.Accel * dt))
		}
		if in.Brake {
			// Braking, not true reverse: half the brake constant.
			v.Vel = v.Vel.Sub(forward.Scale(v.Brake * dt * 0.5))
		}
		// Turning is sluggish near standstill and capped at speed.
		factor := Clamp(v.Vel.Length()/TurnSpeedRef, TurnFactorMin, TurnFactorMax)
		if in.Left {
			v.Heading -= v.TurnRate * dt * factor
		}
		if in.Right {
			v.Heading += v.TurnRate * dt * factor
		}
	}

	v.Vel = v.Vel.Scale(v.Friction)
	if speed := v.Vel.Length(); speed > v.MaxSpeed {
		v.Vel = v.Vel.Scale(v.MaxSpeed / speed)
	}

	candidate := v.Pos.Add(v.Vel.Scale(dt))
	if obstacles.Blocks(RectAt(candidate, v.Width, v.Height)) {
		v.Vel = v.Vel.Scale(BounceFactor)
		candidate = v.Pos.Add(v.Vel.Scale(dt))
	}

	v.Pos.X = Clamp(candidate.X, 0, worldW)
	v.Pos.Y = Clamp(candidate.Y, 0, worldH)
}

// Speed returns the current speed in pixels per second.
func (v *Vehicle) Speed() float64 {
	return v.Vel.Length()
}
