// Package results contains the reporting sinks for aggregated simulation
// statistics: a postgres store and a CSV writer. The simulator hands sinks a
// flat per-strategy table and knows nothing about their formats.
package results

import (
	"context"
	"database/sql"
	"fmt"

	"flipseven-simulator/pkg/simulator"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/sirupsen/logrus"

	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // postgres driver
)

// Store persists simulation results to postgres
type Store struct {
	db *sql.DB
}

// Open connects to postgres and verifies the connection
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate runs the schema migrations
func (s *Store) Migrate(migrationsPath string) error {
	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")

	driver, err := postgres.WithInstance(s.db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

// SaveRun stores a run and its per-strategy rows in a single transaction
func (s *Store) SaveRun(ctx context.Context, stats *simulator.AggregateStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const insertRun = `
INSERT INTO simulation_runs (id, seed, games)
VALUES ($1, $2, $3)`

	if _, err := tx.ExecContext(ctx, insertRun, stats.RunID, stats.Seed, stats.Games); err != nil {
		_ = tx.Rollback()
		return err
	}

	const insertStat = `
INSERT INTO strategy_stats
(run_id, position, strategy, games, wins, win_rate, win_rate_low, win_rate_high, total_score, avg_score, avg_rounds_to_win, busts, flip_sevens)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for _, st := range stats.Stats {
		_, err := tx.ExecContext(ctx, insertStat,
			stats.RunID, st.Position, st.Strategy, st.Games, st.Wins,
			st.WinRate, st.WinRateLow, st.WinRateHigh,
			st.TotalScore, st.AvgScore, st.AvgRoundsToWin, st.Busts, st.FlipSevens)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
