package game

// Possession: transfer of control between a pedestrian and a vehicle. The
// link is bidirectional (Pedestrian.Vehicle and Vehicle.Driver) and is
// always set or cleared as a pair so no observer ever sees a half-link.

// TryEnterVehicle links p to v when p is on foot, v is unoccupied and the
// two are within InteractRadius. Returns whether the transition happened.
// The pedestrian's position snaps to the vehicle for cosmetic parity.
func TryEnterVehicle(p *Pedestrian, v *Vehicle) bool {
	if p.Vehicle != nil || v.Driver != nil {
		return false
	}
	if Distance(p.Pos, v.Pos) >= InteractRadius {
		return false
	}
	p.Vehicle = v
	v.Driver = p
	p.Pos = v.Pos
	return true
}

// ExitVehicle dismounts p from the vehicle it possesses. The exit point is
// ExitOffset pixels along the vehicle's right-hand perpendicular; when that
// square would land inside a building the left-hand side is used instead,
// with no further fallback. The residual vehicle velocity is damped so the
// car does not immediately run the pedestrian over.
func ExitVehicle(p *Pedestrian, obstacles Obstacles, worldW, worldH float64) bool {
	v := p.Vehicle
	if v == nil {
		return false
	}

	exit := v.Pos.Add(Heading(v.Heading + 90).Scale(ExitOffset))
	if obstacles.Blocks(RectAt(exit, p.Size, p.Size)) {
		exit = v.Pos.Add(Heading(v.Heading - 90).Scale(ExitOffset))
	}
	p.Pos.X = Clamp(exit.X, 0, worldW)
	p.Pos.Y = Clamp(exit.Y, 0, worldH)

	p.Vehicle = nil
	v.Driver = nil
	v.Vel = v.Vel.Scale(ExitVelDamp)
	return true
}

// ToggleVehicle is the interact action: enter when on foot and close enough,
// exit when driving, no-op otherwise.
func ToggleVehicle(p *Pedestrian, v *Vehicle, obstacles Obstacles, worldW, worldH float64) {
	if p.Vehicle == v && v != nil {
		ExitVehicle(p, obstacles, worldW, worldH)
		return
	}
	if v != nil {
		TryEnterVehicle(p, v)
	}
}
