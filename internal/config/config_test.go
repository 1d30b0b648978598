package config

import (
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("FLIP7_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("FLIP7_PG_DSN", "postgres://override@localhost:5432/flip7")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.Equal(2500, cfg.Simulation.Games)
	a.Equal(250, cfg.Simulation.TargetScore)
	a.Equal("postgres://override@localhost:5432/flip7", cfg.PGDSN)
	a.Equal(4, len(cfg.Lineup))
	a.Equal("card-count", cfg.Lineup[0].Name)
	a.Equal(5, cfg.Lineup[0].TargetCount)

	// ensure that it's only loaded once
	_ = os.Setenv("FLIP7_PG_DSN", "postgres://third@localhost:5432/flip7")
	// ensure we aren't using a pointer
	cfg.PGDSN = "bad"
	cfg = Instance()
	a.Equal("postgres://override@localhost:5432/flip7", cfg.PGDSN)
}

func TestLoad_missingFile(t *testing.T) {
	clear := setEnv("FLIP7_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(1000, cfg.Simulation.Games)
	a.Equal(200, cfg.Simulation.TargetScore)
	a.Equal("./sql", cfg.MigrationsPath)
	a.Equal("info", cfg.Log.Level)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
