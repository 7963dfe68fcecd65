package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertLinkSymmetry(t *testing.T, p *Pedestrian, v *Vehicle) {
	t.Helper()
	if p.Vehicle != nil {
		assert.Same(t, v, p.Vehicle)
		assert.Same(t, p, v.Driver)
	} else {
		assert.Nil(t, v.Driver)
	}
}

func TestEnterVehicleWithinRadius(t *testing.T) {
	p := newTestPedestrian(Vec2{1000, 1000})
	v := NewVehicle("car", Vec2{1050, 1000})

	require.True(t, TryEnterVehicle(p, v))
	assertLinkSymmetry(t, p, v)
	assert.Equal(t, v.Pos, p.Pos, "pedestrian snaps to the vehicle")
}

func TestEnterVehicleOutOfRange(t *testing.T) {
	p := newTestPedestrian(Vec2{1000, 1000})
	v := NewVehicle("car", Vec2{1100, 1000})

	assert.False(t, TryEnterVehicle(p, v))
	assertLinkSymmetry(t, p, v)
	assert.Equal(t, Vec2{1000, 1000}, p.Pos)
}

func TestEnterOccupiedVehicleRefused(t *testing.T) {
	driver := newTestPedestrian(Vec2{1050, 1000})
	p := newTestPedestrian(Vec2{1000, 1000})
	v := NewVehicle("car", Vec2{1050, 1000})
	require.True(t, TryEnterVehicle(driver, v))

	assert.False(t, TryEnterVehicle(p, v))
	assert.Same(t, driver, v.Driver)
}

func TestEnterExitRoundTrip(t *testing.T) {
	p := newTestPedestrian(Vec2{1000, 1000})
	v := NewVehicle("car", Vec2{1050, 1000})
	v.Vel = Vec2{X: 50, Y: 0}

	ToggleVehicle(p, v, nil, testWorldW, testWorldH)
	require.Same(t, v, p.Vehicle)

	ToggleVehicle(p, v, nil, testWorldW, testWorldH)
	assert.Nil(t, p.Vehicle)
	assert.Nil(t, v.Driver)

	// Heading 0: the right-hand perpendicular points along +y.
	assert.InDelta(t, v.Pos.X, p.Pos.X, 1e-9)
	assert.InDelta(t, v.Pos.Y+ExitOffset, p.Pos.Y, 1e-9)

	// Residual velocity is damped so the car doesn't run the player over.
	assert.InDelta(t, 50*ExitVelDamp, v.Vel.X, 1e-9)
}

func TestExitFallsBackToLeftSide(t *testing.T) {
	p := newTestPedestrian(Vec2{1000, 1000})
	v := NewVehicle("car", Vec2{1000, 1000})
	require.True(t, TryEnterVehicle(p, v))

	// Wall covering the right-hand exit spot (heading 0 => +y side).
	obstacles := Obstacles{{Rect: Rect{X: 900, Y: 1040, W: 200, H: 100}}}

	require.True(t, ExitVehicle(p, obstacles, testWorldW, testWorldH))
	assert.InDelta(t, 1000.0, p.Pos.X, 1e-9)
	assert.InDelta(t, 1000-ExitOffset, p.Pos.Y, 1e-9)
}

func TestExitClampsToWorldBounds(t *testing.T) {
	p := newTestPedestrian(Vec2{1000, 10})
	v := NewVehicle("car", Vec2{1000, 10})
	v.Heading = 180 // right-hand perpendicular points along -y
	require.True(t, TryEnterVehicle(p, v))

	require.True(t, ExitVehicle(p, nil, testWorldW, testWorldH))
	assert.Equal(t, 0.0, p.Pos.Y)
}

func TestInteractIsNoOpWhenNothingApplies(t *testing.T) {
	p := newTestPedestrian(Vec2{0, 0})
	v := NewVehicle("car", Vec2{5000, 3000})

	ToggleVehicle(p, v, nil, testWorldW, testWorldH)
	assert.Nil(t, p.Vehicle)
	assert.Nil(t, v.Driver)
	assert.Equal(t, Vec2{0, 0}, p.Pos)
}
