package simulator

import (
	"sort"
	"sync"

	"flipseven-simulator/internal/rng"
	"flipseven-simulator/pkg/flipseven"
	"flipseven-simulator/pkg/strategy"

	"github.com/sirupsen/logrus"
)

// maxOpponents caps matchup size at four players to bound deck-exhaustion
// pressure in long experiments
const maxOpponents = 3

// RunExperiment evaluates every strategy as the first seat against opponents
// randomly sampled from the rest of the pool, gamesPerMatchup matches each.
// The returned table is sorted by win rate, best first.
func RunExperiment(strategies []strategy.Strategy, gamesPerMatchup int, opts Options) ([]StrategyStats, error) {
	if len(strategies) < flipseven.MinPlayers {
		return nil, flipseven.PlayerCountError{
			Min: flipseven.MinPlayers,
			Max: flipseven.MaxPlayers,
			Got: len(strategies),
		}
	}

	for _, s := range strategies {
		if s == nil {
			return nil, flipseven.ErrNilStrategy
		}
	}

	if gamesPerMatchup <= 0 {
		return nil, ErrNoGames
	}

	opts.applyDefaults()

	results := make([]StrategyStats, len(strategies))
	for subject := range strategies {
		stats, err := runMatchups(subject, strategies, gamesPerMatchup, opts)
		if err != nil {
			return nil, err
		}

		results[subject] = stats

		opts.Logger.WithFields(logrus.Fields{
			"strategy": stats.Strategy,
			"winRate":  stats.WinRate,
			"games":    gamesPerMatchup,
		}).Debug("matchups complete")
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].WinRate > results[j].WinRate
	})

	return results, nil
}

// runMatchups plays the subject's games. Game g of subject s uses seed
// base + s*gamesPerMatchup + g, so experiments reproduce across runs and
// worker counts.
func runMatchups(subject int, strategies []strategy.Strategy, gamesPerMatchup int, opts Options) (StrategyStats, error) {
	base := opts.Seed + int64(subject)*int64(gamesPerMatchup)

	jobs := make(chan int)
	accumulators := make([]*accumulator, opts.Workers)
	errs := make([]error, opts.Workers)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		// only the subject's seat matters, but the accumulator is shaped
		// for the largest lineup
		acc := newAccumulator(1 + maxOpponents)
		accumulators[w] = acc

		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for index := range jobs {
				if errs[worker] != nil {
					continue
				}

				gen := rng.NewSeeded(base + int64(index))
				lineup := sampleLineup(gen, strategies, subject)

				g, err := flipseven.NewGame(opts.Logger, lineup, opts.GameOptions, gen)
				if err != nil {
					errs[worker] = err
					continue
				}

				acc.addSeatZero(g.PlayMatch())
			}
		}(w)
	}

	for i := 0; i < gamesPerMatchup; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return StrategyStats{}, err
		}
	}

	merged := newAccumulator(1 + maxOpponents)
	for _, acc := range accumulators {
		merged.merge(acc)
	}

	stats := merged.seatStats(0, strategies[subject].Name())
	stats.Position = subject
	return stats, nil
}

// sampleLineup puts the subject first and draws up to maxOpponents distinct
// opponents from the remaining pool
func sampleLineup(gen rng.Generator, strategies []strategy.Strategy, subject int) []strategy.Strategy {
	pool := make([]int, 0, len(strategies)-1)
	for i := range strategies {
		if i != subject {
			pool = append(pool, i)
		}
	}

	count := maxOpponents
	if len(pool) < count {
		count = len(pool)
	}

	// partial Fisher-Yates: the first count entries are the sample
	for j := 0; j < count; j++ {
		swap := j + gen.Intn(len(pool)-j)
		pool[j], pool[swap] = pool[swap], pool[j]
	}

	lineup := make([]strategy.Strategy, 0, count+1)
	lineup = append(lineup, strategies[subject])
	for _, i := range pool[:count] {
		lineup = append(lineup, strategies[i])
	}

	return lineup
}
