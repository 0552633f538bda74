package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletArena_SpawnUntilFull(t *testing.T) {
	arena := NewBulletArena(3)
	assert.Equal(t, 3, arena.Cap())

	for i := 0; i < 3; i++ {
		require.True(t, arena.Spawn(Bullet{X: i}))
	}
	assert.True(t, arena.Full())
	assert.False(t, arena.Spawn(Bullet{X: 99}))
	assert.Equal(t, 3, arena.Len())
}

func TestBulletArena_RemoveSwapsLast(t *testing.T) {
	arena := NewBulletArena(4)
	arena.Spawn(Bullet{X: 1})
	arena.Spawn(Bullet{X: 2})
	arena.Spawn(Bullet{X: 3})

	arena.Remove(0)
	assert.Equal(t, []Bullet{{X: 3}, {X: 2}}, arena.Live())

	arena.Remove(1)
	assert.Equal(t, []Bullet{{X: 3}}, arena.Live())

	arena.Remove(0)
	assert.Zero(t, arena.Len())
	assert.Empty(t, arena.Live())
}

func TestBulletArena_AtMutates(t *testing.T) {
	arena := NewBulletArena(1)
	arena.Spawn(Bullet{Y: 10, Dir: 1})

	arena.At(0).Y += 2
	assert.Equal(t, 12, arena.Live()[0].Y)
}

func TestBulletArena_Clear(t *testing.T) {
	arena := NewBulletArena(2)
	arena.Spawn(Bullet{X: 1})
	arena.Spawn(Bullet{X: 2})

	arena.Clear()
	assert.Zero(t, arena.Len())
	assert.Equal(t, 2, arena.Cap())
	assert.True(t, arena.Spawn(Bullet{X: 3}))
}
