package game

// Camera maps world coordinates to viewport coordinates. It is recomputed
// from the followed target every tick and never persisted.
type Camera struct {
	Offset Vec2 // world position of the viewport's top-left corner
	ViewW  float64
	ViewH  float64
}

// Update centers the viewport on target, clamped so the visible area stays
// inside the world. When the world is smaller than the viewport the lower
// bound wins and the offset sticks to zero.
func (c *Camera) Update(target Vec2, worldW, worldH float64) {
	c.Offset.X = Clamp(target.X-c.ViewW/2, 0, worldW-c.ViewW)
	c.Offset.Y = Clamp(target.Y-c.ViewH/2, 0, worldH-c.ViewH)
}

// WorldToScreen converts a world position to viewport coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(c.Offset)
}
