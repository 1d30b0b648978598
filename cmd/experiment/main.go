package main

import (
	"flag"
	"flipseven-simulator/internal/config"
	"flipseven-simulator/pkg/flipseven"
	"flipseven-simulator/pkg/simulator"
	"flipseven-simulator/pkg/strategy"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
)

var (
	games = flag.Int("games", 0, "matches per candidate (default from config)")
	seed  = flag.Int64("seed", 0, "base seed; 0 picks one at random")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	pool, err := candidatePool(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not build candidate pool")
	}

	gamesPerMatchup := cfg.Simulation.GamesPerMatchup
	if *games > 0 {
		gamesPerMatchup = *games
	}

	gameOpts := flipseven.DefaultOptions()
	if cfg.Simulation.TargetScore > 0 {
		gameOpts.TargetScore = cfg.Simulation.TargetScore
	}

	opts := simulator.Options{
		Workers:     cfg.Simulation.Workers,
		GameOptions: gameOpts,
	}
	if *seed > 0 {
		opts.Seed = *seed
	} else {
		opts.Seed = cfg.Simulation.Seed
	}

	leaderboard, err := simulator.RunExperiment(pool, gamesPerMatchup, opts)
	if err != nil {
		logrus.WithError(err).Fatal("experiment failed")
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "RANK\tSTRATEGY\tWIN%\t95% CI\tAVG SCORE\tBUSTS\tFLIP 7S")
	for i, s := range leaderboard {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%.1f%%\t%.1f%%-%.1f%%\t%.1f\t%d\t%d\n",
			i+1, s.Strategy, s.WinRate*100, s.WinRateLow*100, s.WinRateHigh*100,
			s.AvgScore, s.Busts, s.FlipSevens)
	}
	_ = tw.Flush()
}

// candidatePool builds the strategies under evaluation. With no lineup in the
// config it sweeps each family's parameter space.
func candidatePool(cfg config.Config) ([]strategy.Strategy, error) {
	if len(cfg.Lineup) > 0 {
		return strategy.FromSpecs(cfg.Lineup)
	}

	specs := []strategy.Spec{
		{Name: "ultimate-adaptive"},
		{Name: "point-threshold", TargetPoints: 35},
		{Name: "point-threshold", TargetPoints: 45},
		{Name: "point-threshold", TargetPoints: 55},
		{Name: "hybrid", MinCards: 3, TargetPoints: 50, MaxBustProb: 0.20},
		{Name: "hybrid", MinCards: 3, TargetPoints: 50, MaxBustProb: 0.20, SecondChanceAware: true},
	}

	for _, p := range []float64{0.10, 0.15, 0.20, 0.25} {
		specs = append(specs, strategy.Spec{Name: "bust-probability", MaxBustProb: p})
		specs = append(specs, strategy.Spec{Name: "bust-probability", MaxBustProb: p, SecondChanceAware: true})
	}

	for _, n := range []int{4, 5, 6, 7} {
		specs = append(specs, strategy.Spec{Name: "card-count", TargetCount: n})
	}

	return strategy.FromSpecs(specs)
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
