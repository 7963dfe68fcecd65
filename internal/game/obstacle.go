package game

// RGB is a cosmetic color carried in snapshots.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Building is a static obstacle: an axis-aligned rectangle that blocks both
// pedestrians and vehicles, plus a per-building roof tint derived once at
// world generation. Buildings never move or despawn during a session.
type Building struct {
	Rect Rect `json:"rect"`
	Roof RGB  `json:"roof"`
}

// Obstacles is the immutable registry of blocking rectangles.
type Obstacles []Building

// Blocks reports whether r overlaps any building. Scans are read-only; the
// registry never changes after generation.
func (o Obstacles) Blocks(r Rect) bool {
	for _, b := range o {
		if r.Overlaps(b.Rect) {
			return true
		}
	}
	return false
}

// roofBase is the reference roof color; each building shifts every channel
// by up to ±roofJitter.
var roofBase = RGB{R: 170, G: 160, B: 150}

const roofJitter = 10
