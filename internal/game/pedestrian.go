package game

// Pedestrian is an on-foot agent: the player or an NPC. While it possesses
// a vehicle it performs no movement of its own; its position is synced to
// the vehicle each tick for cosmetic parity.
type Pedestrian struct {
	ID    string
	Pos   Vec2
	Speed float64 // pixels per second, overridden while boost mode is active
	Size  float64 // bounding square side

	// Vehicle is non-nil while this pedestrian is driving. The link is
	// always paired with Vehicle.Driver; see possession.go.
	Vehicle *Vehicle
}

// Bounds returns the pedestrian's bounding square centered on its position.
func (p *Pedestrian) Bounds() Rect {
	return RectAt(p.Pos, p.Size, p.Size)
}

// Update moves the pedestrian along intent for dt seconds. A move whose
// bounding square would overlap any building is rejected entirely; there is
// no axis-sliding. The final position is clamped into world bounds either
// way. A zero intent means no movement and no normalization.
func (p *Pedestrian) Update(intent Vec2, dt float64, obstacles Obstacles, worldW, worldH float64) {
	if p.Vehicle != nil {
		return
	}
	if intent.LengthSq() > 0 {
		dir := intent.Normalize()
		candidate := p.Pos.Add(dir.Scale(p.Speed * dt))
		if !obstacles.Blocks(RectAt(candidate, p.Size, p.Size)) {
			p.Pos = candidate
		}
	}
	p.Pos.X = Clamp(p.Pos.X, 0, worldW)
	p.Pos.Y = Clamp(p.Pos.Y, 0, worldH)
}

// IntentFromAxes converts four axis flags into a movement intent vector.
// Opposing flags cancel out.
func IntentFromAxes(up, down, left, right bool) Vec2 {
	var v Vec2
	if up {
		v.Y--
	}
	if down {
		v.Y++
	}
	if left {
		v.X--
	}
	if right {
		v.X++
	}
	return v
}
