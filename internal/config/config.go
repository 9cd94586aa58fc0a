// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds frontend and run settings. Engine rule tweaks live here
// too so a .env can flip them without a rebuild.
type Config struct {
	Seed           uint64        // 0 = derive from the clock
	TickRate       int           // engine steps per second
	LogLevel       string        // logrus level name
	LowAceStraight bool
	StartingMoney  int32
	HandSize       uint8
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TickRate:      60,
		LogLevel:      "info",
		StartingMoney: 4,
		HandSize:      8,
	}
}

// Load reads .env (if present) and the environment on top of defaults.
func Load() Config {
	_ = godotenv.Load() // absent .env is fine

	cfg := Default()
	if v := getEnvUint64("BALATRO_SEED"); v > 0 {
		cfg.Seed = v
	}
	if v := getEnvInt("BALATRO_TICK_RATE"); v > 0 {
		cfg.TickRate = v
	}
	if v := os.Getenv("BALATRO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BALATRO_LOW_ACE_STRAIGHT"); v != "" {
		cfg.LowAceStraight = v == "1" || v == "true"
	}
	if v := getEnvInt("BALATRO_STARTING_MONEY"); v > 0 {
		cfg.StartingMoney = int32(v)
	}
	if v := getEnvInt("BALATRO_HAND_SIZE"); v > 0 && v <= 16 {
		cfg.HandSize = uint8(v)
	}
	return cfg
}

// EffectiveSeed resolves a zero seed to the wall clock.
func (c Config) EffectiveSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// TickInterval returns the wall-clock duration of one engine tick.
func (c Config) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func getEnvInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}

func getEnvUint64(key string) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
