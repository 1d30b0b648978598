package main

import (
	"context"
	"flag"
	"flipseven-simulator/internal/config"
	"flipseven-simulator/pkg/flipseven"
	"flipseven-simulator/pkg/results"
	"flipseven-simulator/pkg/simulator"
	"flipseven-simulator/pkg/strategy"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var (
	games   = flag.Int("games", 0, "number of matches to play (default from config)")
	seed    = flag.Int64("seed", 0, "base seed; 0 picks one at random")
	workers = flag.Int("workers", 0, "concurrent matches; 0 uses the CPU count")
	csvPath = flag.String("csv", "", "write per-strategy stats to this CSV file")
	save    = flag.Bool("save", false, "save the run to the results database")
)

func main() {
	flag.Parse()
	setupLogger()

	logrus.WithField("version", Version).Info("flip 7 simulator")

	cfg := config.Instance()

	lineup, err := lineupFromConfig(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not build lineup")
	}

	numGames := cfg.Simulation.Games
	if *games > 0 {
		numGames = *games
	}

	gameOpts := flipseven.DefaultOptions()
	if cfg.Simulation.TargetScore > 0 {
		gameOpts.TargetScore = cfg.Simulation.TargetScore
	}

	opts := simulator.Options{
		Workers:     firstPositive(*workers, cfg.Simulation.Workers),
		Seed:        firstPositive64(*seed, cfg.Simulation.Seed),
		GameOptions: gameOpts,
	}

	stats, err := simulator.RunSimulation(lineup, numGames, opts)
	if err != nil {
		logrus.WithError(err).Fatal("simulation failed")
	}

	printStats(stats)

	if path := firstNonEmpty(*csvPath, cfg.Output.CSVPath); path != "" {
		if err := writeCSVFile(path, stats.Stats); err != nil {
			logrus.WithError(err).Fatal("could not write CSV")
		}

		logrus.WithField("path", path).Info("wrote CSV")
	}

	if *save || cfg.Output.SaveToDatabase {
		store, err := results.Open(cfg.PGDSN)
		if err != nil {
			logrus.WithError(err).Fatal("could not connect to database")
		}
		defer func() { _ = store.Close() }()

		if err := store.SaveRun(context.Background(), stats); err != nil {
			logrus.WithError(err).Fatal("could not save run")
		}

		logrus.WithField("run", stats.RunID).Info("saved run")
	}
}

// lineupFromConfig builds the table of bots. An empty config falls back to a
// standard five-seat lineup covering every strategy family.
func lineupFromConfig(cfg config.Config) ([]strategy.Strategy, error) {
	if len(cfg.Lineup) > 0 {
		return strategy.FromSpecs(cfg.Lineup)
	}

	return strategy.FromSpecs([]strategy.Spec{
		{Name: "bust-probability", MaxBustProb: 0.15},
		{Name: "card-count", TargetCount: 5},
		{Name: "point-threshold", TargetPoints: 45},
		{Name: "hybrid", MinCards: 3, TargetPoints: 50, MaxBustProb: 0.20},
		{Name: "ultimate-adaptive"},
	})
}

func printStats(stats *simulator.AggregateStats) {
	fmt.Printf("run %s (seed %d, %d games)\n", stats.RunID, stats.Seed, stats.Games)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SEAT\tSTRATEGY\tWINS\tWIN%\t95% CI\tAVG SCORE\tAVG ROUNDS\tBUSTS\tFLIP 7S")
	for _, s := range stats.Stats {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f%%\t%.1f%%-%.1f%%\t%.1f\t%.1f\t%d\t%d\n",
			s.Position, s.Strategy, s.Wins, s.WinRate*100, s.WinRateLow*100, s.WinRateHigh*100,
			s.AvgScore, s.AvgRoundsToWin, s.Busts, s.FlipSevens)
	}
	_ = tw.Flush()
}

func writeCSVFile(path string, stats []simulator.StrategyStats) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return results.WriteCSV(file, stats)
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}

	return 0
}

func firstPositive64(values ...int64) int64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}

	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
