package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	player := NewPlayer(100, 200)

	require.NotNil(t, player)
	assert.Equal(t, ColliderBox{X: 100, Y: 200, Width: 24, Height: 24}, player.Collider)
	assert.False(t, player.CanJump)
	assert.False(t, player.CanDash)
	assert.False(t, player.IsDashing())
}

func TestPlayer_Stop(t *testing.T) {
	player := NewPlayer(0, 0)
	player.MomentumX = 336
	player.MomentumY = -600
	player.Refill()
	player.DashTimer = 0.1

	player.Stop()

	assert.Zero(t, player.MomentumX)
	assert.Zero(t, player.MomentumY)
	assert.False(t, player.CanJump)
	assert.False(t, player.CanDash)
	assert.False(t, player.IsDashing())
}

func TestPlayer_Center(t *testing.T) {
	player := NewPlayer(10.7, 20.2)
	x, y := player.Center()
	assert.Equal(t, 22, x)
	assert.Equal(t, 32, y)
}
