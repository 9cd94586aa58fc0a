package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int32(4), cfg.StartingMoney)
	assert.Equal(t, uint8(8), cfg.HandSize)
	assert.False(t, cfg.LowAceStraight)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BALATRO_SEED", "12345")
	t.Setenv("BALATRO_TICK_RATE", "30")
	t.Setenv("BALATRO_LOG_LEVEL", "debug")
	t.Setenv("BALATRO_LOW_ACE_STRAIGHT", "true")
	t.Setenv("BALATRO_STARTING_MONEY", "10")
	t.Setenv("BALATRO_HAND_SIZE", "10")

	cfg := Load()
	assert.Equal(t, uint64(12345), cfg.Seed)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LowAceStraight)
	assert.Equal(t, int32(10), cfg.StartingMoney)
	assert.Equal(t, uint8(10), cfg.HandSize)
}

func TestBadValuesIgnored(t *testing.T) {
	t.Setenv("BALATRO_TICK_RATE", "not-a-number")
	t.Setenv("BALATRO_HAND_SIZE", "99") // beyond the hand stack

	cfg := Load()
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, uint8(8), cfg.HandSize)
}

func TestEffectiveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	assert.Equal(t, uint64(7), cfg.EffectiveSeed())

	cfg.Seed = 0
	assert.NotZero(t, cfg.EffectiveSeed())
}

func TestTickInterval(t *testing.T) {
	cfg := Default()
	assert.Equal(t, time.Second/60, cfg.TickInterval())
	cfg.TickRate = 0
	assert.Equal(t, time.Second/60, cfg.TickInterval())
}
