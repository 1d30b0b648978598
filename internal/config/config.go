package config

import (
	"flipseven-simulator/internal/util"
	"flipseven-simulator/pkg/strategy"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"os"
)

// Config provides configuration for the Flip 7 simulator
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level string `yaml:"level"`
	}
	Simulation struct {
		Games           int   `yaml:"games"`
		GamesPerMatchup int   `yaml:"gamesPerMatchup" envconfig:"games_per_matchup"`
		Workers         int   `yaml:"workers"`
		Seed            int64 `yaml:"seed"`
		TargetScore     int   `yaml:"targetScore" envconfig:"target_score"`
	}
	Output struct {
		CSVPath        string `yaml:"csvPath" envconfig:"csv_path"`
		SaveToDatabase bool   `yaml:"saveToDatabase" envconfig:"save_to_database"`
	}
	Lineup []strategy.Spec `yaml:"lineup"`
}

var config Config

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

// Load will load the configuration. A missing config file is not an error;
// defaults and environment variables still apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("FLIP7_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("flip7", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// DefaultConfig returns the configuration with all defaults applied
func DefaultConfig() Config {
	cfg := Config{
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "./sql",
	}

	cfg.Log.Level = "info"
	cfg.Simulation.Games = 1000
	cfg.Simulation.GamesPerMatchup = 500
	cfg.Simulation.TargetScore = 200

	return cfg
}
