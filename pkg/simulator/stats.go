package simulator

import (
	"math"

	"flipseven-simulator/pkg/flipseven"
	"flipseven-simulator/pkg/strategy"
)

// StrategyStats is the aggregated outcome for a single strategy across a
// batch of matches. This flat row is the contract handed to reporting sinks.
type StrategyStats struct {
	// Strategy is the strategy's display name
	Strategy string `json:"strategy"`

	// Position is the seat the strategy occupied
	Position int `json:"position"`

	// Games is the number of matches played
	Games int `json:"games"`

	// Wins is the number of matches won
	Wins int `json:"wins"`

	// WinRate is Wins / Games
	WinRate float64 `json:"winRate"`

	// WinRateLow and WinRateHigh bound the win rate with a Wilson 95%
	// confidence interval
	WinRateLow  float64 `json:"winRateLow"`
	WinRateHigh float64 `json:"winRateHigh"`

	// TotalScore is the sum of final cumulative scores
	TotalScore int `json:"totalScore"`

	// AvgScore is the average final cumulative score
	AvgScore float64 `json:"avgScore"`

	// AvgRoundsToWin is the average match length in rounds, over won
	// matches only
	AvgRoundsToWin float64 `json:"avgRoundsToWin"`

	// Busts counts matches that ended with this strategy busted in the
	// final round
	Busts int `json:"busts"`

	// FlipSevens counts matches that ended with this strategy holding a
	// flip 7
	FlipSevens int `json:"flipSevens"`
}

// AggregateStats is the result of a full simulation run
type AggregateStats struct {
	// RunID uniquely identifies this simulation run in exported results
	RunID string `json:"runId"`

	// Seed is the base seed; re-running with the same seed, lineup and game
	// count reproduces the run exactly
	Seed int64 `json:"seed"`

	// Games is the number of matches simulated
	Games int `json:"games"`

	Stats []StrategyStats `json:"stats"`
}

// WilsonCI95 bounds a Bernoulli win rate with a 95% Wilson score interval
func WilsonCI95(wins, total int) (low, high float64) {
	if total <= 0 {
		return 0, 1
	}

	const z = 1.96
	n := float64(total)
	p := float64(wins) / n
	den := 1 + (z*z)/n
	center := p + (z*z)/(2*n)
	half := z * math.Sqrt((p*(1-p))/n+(z*z)/(4*n*n))

	return (center - half) / den, (center + half) / den
}

// accumulator collects per-seat outcomes. Each worker owns one; they are
// merged once all workers finish, so no locking is needed while matches run.
type accumulator struct {
	games        []int
	wins         []int
	winnerRounds []int
	totalScore   []int
	busts        []int
	flipSevens   []int
}

func newAccumulator(seats int) *accumulator {
	return &accumulator{
		games:        make([]int, seats),
		wins:         make([]int, seats),
		winnerRounds: make([]int, seats),
		totalScore:   make([]int, seats),
		busts:        make([]int, seats),
		flipSevens:   make([]int, seats),
	}
}

func (a *accumulator) add(result *flipseven.MatchResult) {
	for i, pr := range result.Participants {
		a.games[i]++
		a.totalScore[i] += pr.TotalScore
		if pr.Busted {
			a.busts[i]++
		}
		if pr.FlipSeven {
			a.flipSevens[i]++
		}
	}

	a.wins[result.WinnerPosition]++
	a.winnerRounds[result.WinnerPosition] += result.Rounds
}

// addSeatZero records only the first seat's outcome; used by experiments
// where opponents rotate between games
func (a *accumulator) addSeatZero(result *flipseven.MatchResult) {
	pr := result.Participants[0]
	a.games[0]++
	a.totalScore[0] += pr.TotalScore
	if pr.Busted {
		a.busts[0]++
	}
	if pr.FlipSeven {
		a.flipSevens[0]++
	}

	if result.WinnerPosition == 0 {
		a.wins[0]++
		a.winnerRounds[0] += result.Rounds
	}
}

func (a *accumulator) merge(other *accumulator) {
	for i := range a.games {
		a.games[i] += other.games[i]
		a.wins[i] += other.wins[i]
		a.winnerRounds[i] += other.winnerRounds[i]
		a.totalScore[i] += other.totalScore[i]
		a.busts[i] += other.busts[i]
		a.flipSevens[i] += other.flipSevens[i]
	}
}

// stats flattens the accumulator into the per-strategy table
func (a *accumulator) stats(strategies []strategy.Strategy) []StrategyStats {
	stats := make([]StrategyStats, len(strategies))
	for i, s := range strategies {
		stats[i] = a.seatStats(i, s.Name())
	}

	return stats
}

func (a *accumulator) seatStats(seat int, name string) StrategyStats {
	games := a.games[seat]
	wins := a.wins[seat]

	st := StrategyStats{
		Strategy:   name,
		Position:   seat,
		Games:      games,
		Wins:       wins,
		TotalScore: a.totalScore[seat],
		Busts:      a.busts[seat],
		FlipSevens: a.flipSevens[seat],
	}

	if games > 0 {
		st.WinRate = float64(wins) / float64(games)
		st.AvgScore = float64(a.totalScore[seat]) / float64(games)
	}

	if wins > 0 {
		st.AvgRoundsToWin = float64(a.winnerRounds[seat]) / float64(wins)
	}

	st.WinRateLow, st.WinRateHigh = WilsonCI95(wins, games)
	return st
}
