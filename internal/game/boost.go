package game

import "math"

// Boost-mode actions recognized by the input-sequence matcher.
const (
	ActionUp    = "up"
	ActionDown  = "down"
	ActionLeft  = "left"
	ActionRight = "right"
	ActionA     = "a"
	ActionB     = "b"
)

// boostSequence is the activation sequence: up up down down left right
// left right b a.
var boostSequence = []string{
	ActionUp, ActionUp, ActionDown, ActionDown,
	ActionLeft, ActionRight, ActionLeft, ActionRight,
	ActionB, ActionA,
}

// BoostDetector matches an ordered action sequence against the raw input
// log. Once activated, boost mode stays on for the rest of the session;
// there is deliberately no deactivation path.
type BoostDetector struct {
	progress []string

	Active bool
	Phase  float64 // seconds since activation, drives the cosmetic hue cycle
}

// Feed appends one recognized action and activates boost mode when the
// trailing actions match the sequence. Unrecognized actions still enter the
// log and so break an in-progress match.
func (b *BoostDetector) Feed(action string) {
	b.progress = append(b.progress, action)
	if len(b.progress) > len(boostSequence) {
		b.progress = b.progress[len(b.progress)-len(boostSequence):]
	}
	if b.matches() {
		b.Active = true
		b.Phase = 0
	}
}

func (b *BoostDetector) matches() bool {
	if len(b.progress) < len(boostSequence) {
		return false
	}
	for i, a := range boostSequence {
		if b.progress[i] != a {
			return false
		}
	}
	return true
}

// Advance moves the hue phase forward while boost mode is active.
func (b *BoostDetector) Advance(dt float64) {
	if b.Active {
		b.Phase += dt
	}
}

// Hue returns the current cosmetic hue in [0, 1), cycling twice per second.
func (b *BoostDetector) Hue() float64 {
	return math.Mod(b.Phase*2, 1)
}
