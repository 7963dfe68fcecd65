package session

import "github.com/freeroamgame/freeroam-server/internal/game"

// pendingInput accumulates client input between ticks. Axis flags are level
// state (latest update wins); interact/relocate are edge-triggered and
// consumed by exactly one tick; actions queue up in arrival order for the
// boost-sequence matcher.
type pendingInput struct {
	up, down, left, right bool

	interact bool
	relocate bool

	actions []string
}

// consume builds the Input for one tick and clears the edges.
func (p *pendingInput) consume(fps float64) game.Input {
	in := game.Input{
		Up:       p.up,
		Down:     p.down,
		Left:     p.left,
		Right:    p.right,
		Interact: p.interact,
		Relocate: p.relocate,
		Actions:  p.actions,
		FPS:      fps,
	}
	p.interact = false
	p.relocate = false
	p.actions = nil
	return in
}
