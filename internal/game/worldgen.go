package game

import (
	"fmt"
	"math/rand"
)

// GenerateWorld builds a world from a seed and config. Generation is pure:
// the same seed and config always produce the same buildings, spawn points
// and initial wander states, which keeps tests deterministic.
func GenerateWorld(seed int64, cfg WorldConfig) *World {
	rng := rand.New(rand.NewSource(seed))

	buildings := generateBuildings(rng, cfg)

	w := &World{
		Cfg:       cfg,
		Seed:      seed,
		rng:       rng,
		Buildings: buildings,
		Roads:     cfg.Roads,
		Marker:    cfg.MarkerStart,
		Camera: Camera{
			ViewW: cfg.ViewportWidth,
			ViewH: cfg.ViewportHeight,
		},
	}

	w.Player = &Pedestrian{
		ID:    "player",
		Pos:   rejectionSpawn(rng, buildings, PlayerSize, cfg),
		Speed: PlayerSpeed,
		Size:  PlayerSize,
	}
	w.Car = NewVehicle("car", cfg.CarSpawn)

	w.NPCs = make([]*NPC, 0, cfg.NPCCount)
	for i := 0; i < cfg.NPCCount; i++ {
		n := &NPC{
			Pedestrian: Pedestrian{
				ID:    fmt.Sprintf("npc-%d", i+1),
				Pos:   rejectionSpawn(rng, buildings, NPCSize, cfg),
				Speed: NPCSpeedMin + rng.Float64()*(NPCSpeedMax-NPCSpeedMin),
				Size:  NPCSize,
			},
			Wander: NewWander(rng),
		}
		w.NPCs = append(w.NPCs, n)
	}

	return w
}

// generateBuildings places the downtown grid plus a handful of scattered
// buildings, each with a jittered roof tint.
func generateBuildings(rng *rand.Rand, cfg WorldConfig) Obstacles {
	var buildings Obstacles

	g := cfg.Grid
	if g.XStep > 0 && g.YStep > 0 {
		for x := g.XStart; x < g.XEnd; x += g.XStep {
			for y := g.YStart; y < g.YEnd; y += g.YStep {
				w := rangeF(rng, g.MinWidth, g.MaxWidth)
				h := rangeF(rng, g.MinHeight, g.MaxHeight)
				jx := rangeF(rng, -g.Jitter, g.Jitter)
				jy := rangeF(rng, -g.Jitter, g.Jitter)
				buildings = append(buildings, Building{
					Rect: Rect{X: x + jx, Y: y + jy, W: w, H: h},
					Roof: roofTint(rng),
				})
			}
		}
	}

	for i := 0; i < cfg.ScatteredCount; i++ {
		w := rangeF(rng, cfg.ScatteredMinSize, cfg.ScatteredMaxSize)
		h := rangeF(rng, cfg.ScatteredMinSize, cfg.ScatteredMaxSize)
		x := rangeF(rng, SpawnMargin, cfg.WorldWidth-SpawnMargin-w)
		y := rangeF(rng, SpawnMargin, cfg.WorldHeight-SpawnMargin-h)
		buildings = append(buildings, Building{
			Rect: Rect{X: x, Y: y, W: w, H: h},
			Roof: roofTint(rng),
		})
	}

	return buildings
}

// rejectionSpawn samples positions until the agent's bounding square clears
// every building. The cap is generous; with the stock layout a handful of
// attempts suffices.
func rejectionSpawn(rng *rand.Rand, buildings Obstacles, size float64, cfg WorldConfig) Vec2 {
	var pos Vec2
	for i := 0; i < SpawnMaxAttempts; i++ {
		pos = Vec2{
			X: rangeF(rng, SpawnMargin, cfg.WorldWidth-SpawnMargin),
			Y: rangeF(rng, SpawnMargin, cfg.WorldHeight-SpawnMargin),
		}
		if !buildings.Blocks(RectAt(pos, size, size)) {
			return pos
		}
	}
	// Give up and accept the last sample rather than spinning forever.
	return pos
}

func roofTint(rng *rand.Rand) RGB {
	return RGB{
		R: jitterChannel(rng, roofBase.R),
		G: jitterChannel(rng, roofBase.G),
		B: jitterChannel(rng, roofBase.B),
	}
}

func jitterChannel(rng *rand.Rand, base uint8) uint8 {
	v := int(base) + rng.Intn(2*roofJitter+1) - roofJitter
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return uint8(v)
}

func rangeF(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
