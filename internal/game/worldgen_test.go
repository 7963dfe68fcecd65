package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWorldIsDeterministic(t *testing.T) {
	cfg := DefaultWorldConfig()
	a := GenerateWorld(99, cfg)
	b := GenerateWorld(99, cfg)

	require.Equal(t, len(a.Buildings), len(b.Buildings))
	for i := range a.Buildings {
		assert.Equal(t, a.Buildings[i], b.Buildings[i])
	}
	assert.Equal(t, a.Player.Pos, b.Player.Pos)
	require.Equal(t, len(a.NPCs), len(b.NPCs))
	for i := range a.NPCs {
		assert.Equal(t, a.NPCs[i].Pos, b.NPCs[i].Pos)
		assert.Equal(t, a.NPCs[i].Speed, b.NPCs[i].Speed)
		assert.Equal(t, a.NPCs[i].Wander.Dir, b.NPCs[i].Wander.Dir)
	}
}

func TestGenerateWorldSeedsDiffer(t *testing.T) {
	cfg := DefaultWorldConfig()
	a := GenerateWorld(1, cfg)
	b := GenerateWorld(2, cfg)
	assert.NotEqual(t, a.Player.Pos, b.Player.Pos)
}

func TestGenerateWorldSpawnsClearOfBuildings(t *testing.T) {
	cfg := DefaultWorldConfig()
	for seed := int64(1); seed <= 10; seed++ {
		w := GenerateWorld(seed, cfg)
		assert.False(t, w.Buildings.Blocks(w.Player.Bounds()),
			"seed %d: player spawned inside a building", seed)
		for _, n := range w.NPCs {
			assert.False(t, w.Buildings.Blocks(n.Bounds()),
				"seed %d: %s spawned inside a building", seed, n.ID)
		}
	}
}

func TestGenerateWorldLayout(t *testing.T) {
	cfg := DefaultWorldConfig()
	w := GenerateWorld(5, cfg)

	// 3x3 downtown grid plus the scattered extras.
	assert.Len(t, w.Buildings, 9+cfg.ScatteredCount)
	assert.Len(t, w.NPCs, cfg.NPCCount)
	assert.Len(t, w.Roads, 4)

	assert.Equal(t, cfg.CarSpawn, w.Car.Pos)
	assert.Equal(t, cfg.MarkerStart, w.Marker)
	assert.Equal(t, cfg.ViewportWidth, w.Camera.ViewW)

	for _, n := range w.NPCs {
		assert.GreaterOrEqual(t, n.Speed, NPCSpeedMin)
		assert.LessOrEqual(t, n.Speed, NPCSpeedMax)
	}
}

func TestGenerateWorldBuildingsInsideWorld(t *testing.T) {
	cfg := DefaultWorldConfig()
	w := GenerateWorld(3, cfg)
	for _, b := range w.Buildings {
		assert.GreaterOrEqual(t, b.Rect.X+b.Rect.W, 0.0)
		assert.LessOrEqual(t, b.Rect.X, cfg.WorldWidth)
		assert.LessOrEqual(t, b.Rect.Y, cfg.WorldHeight)
	}
}
