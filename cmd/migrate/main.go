package main

import (
	"flipseven-simulator/internal/config"
	"flipseven-simulator/pkg/results"
	"github.com/sirupsen/logrus"
	"time"
)

func main() {
	cfg := config.Instance()

	store := waitForDB(cfg.PGDSN)
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB(dsn string) *results.Store {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			store, err := results.Open(dsn)
			if err == nil {
				return store
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
