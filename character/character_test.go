package character

import (
	"testing"
	"time"

	"atlas-characters/stamina"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacter_TickUsesMovement(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, tm := setupTestContext(t)
	sm, err := stamina.NewBuilder().SetMode(stamina.ModeSprinting).Build()
	require.NoError(t, err)
	c := New(logger, tm, 1, sm, 100)

	res := c.Tick(16 * time.Millisecond)
	assert.Equal(t, 503, res.After.Stamina())

	c.Move(1, 0)
	res = c.Tick(16 * time.Millisecond)
	assert.Equal(t, 496, res.After.Stamina())
	assert.False(t, res.Depleted())
	assert.False(t, res.ForcedMode())
}

func TestCharacter_IdleStopsMovement(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, tm := setupTestContext(t)
	sm, err := stamina.NewBuilder().Build()
	require.NoError(t, err)
	c := New(logger, tm, 1, sm, 100)
	c.Move(1, 0)

	require.NoError(t, c.SetLocomotion(stamina.ModeIdle))
	m := c.Model()
	assert.False(t, m.IsMoving())

	res := c.Tick(16 * time.Millisecond)
	assert.Equal(t, stamina.RateRegen, res.After.Rate())
}

func TestRegistry(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, tm := setupTestContext(t)
	sm, err := stamina.NewBuilder().Build()
	require.NoError(t, err)
	r := NewRegistry(Config{})

	assert.NotNil(t, r.Config().Catalog)
	require.NoError(t, r.Add(New(logger, tm, 1, sm, 100)))
	require.NoError(t, r.Add(New(logger, tm, 2, sm, 100)))
	assert.ErrorIs(t, r.Add(New(logger, tm, 2, sm, 100)), ErrAlreadyExists)

	visited := 0
	r.ForEach(func(c *Character) { visited++ })
	assert.Equal(t, 2, visited)

	assert.ErrorIs(t, r.With(tm.Id(), 3, func(c *Character) error { return nil }), ErrNotFound)
	require.NoError(t, r.Remove(tm.Id(), 1))
	assert.Equal(t, 1, r.Size())
}

func TestConfigFromEnv(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Setenv(EnvInventoryMaxWeight, "")
	assert.Equal(t, 100, ConfigFromEnv(logger, nil).MaxWeight)

	t.Setenv(EnvInventoryMaxWeight, "250")
	assert.Equal(t, 250, ConfigFromEnv(logger, nil).MaxWeight)

	t.Setenv(EnvInventoryMaxWeight, "heavy")
	assert.Equal(t, 100, ConfigFromEnv(logger, nil).MaxWeight)
}
