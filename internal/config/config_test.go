package config

import (
	"casino-engine/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("CASINO_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("CASINO_POKER_BIG_BLIND", "60")()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("postgres://casino@db:5432/casino?sslmode=disable", cfg.PGDSN)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(25, cfg.Poker.SmallBlind)
	a.Equal(60, cfg.Poker.BigBlind)
	a.Equal(20, cfg.Blackjack.MinBet)

	// left at the defaults
	a.Equal(1000, cfg.Poker.StartingChips)
	a.Equal("./sql", cfg.MigrationsPath)

	// ensure that it's only loaded once
	defer util.SetEnv("CASINO_POKER_BIG_BLIND", "70")()
	// ensure we aren't using a pointer
	cfg.Poker.BigBlind = 1
	cfg = Instance()
	a.Equal(60, cfg.Poker.BigBlind)
}

func TestDefaults(t *testing.T) {
	defer util.SetEnv("CASINO_CONFIG_FILE", "testdata/missing.yaml")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, DefaultConfig().PGDSN, cfg.PGDSN)
	assert.Equal(t, 5, cfg.Poker.SmallBlind)
	assert.Equal(t, 10, cfg.Blackjack.MinBet)
	assert.False(t, cfg.Log.DisableAccessLogs)
}

func TestLoad_invalid(t *testing.T) {
	defer util.SetEnv("CASINO_CONFIG_FILE", "testdata/invalid.yaml")()
	assert.Error(t, Load())

	defer util.SetEnv("CASINO_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("CASINO_BLACKJACK_MIN_BET", "ten")()
	assert.Error(t, Load())
}
