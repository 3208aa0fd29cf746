package config

import (
	"casino-engine/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the casino engine host
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Poker struct {
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
	} `yaml:"poker"`
	Blackjack struct {
		MinBet        int `yaml:"minBet" envconfig:"min_bet"`
		StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
	} `yaml:"blackjack"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Poker.SmallBlind = 5
	c.Poker.BigBlind = 10
	c.Poker.StartingChips = 1000
	c.Blackjack.MinBet = 10
	c.Blackjack.StartingChips = 1000

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional, the defaults are used for anything it and the environment leave out
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("CASINO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("casino", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
