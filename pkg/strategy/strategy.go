// Package strategy contains the decision policies used by simulated Flip 7
// players. A strategy is a pure function of its construction parameters and
// the view it is handed; it keeps no state between turns, so a single
// instance is safe to share across concurrently running matches.
package strategy

// numberValueTotal is the sum of number values in one deck copy (0+1+...+12).
// Bust probability is estimated against this fixed denominator rather than by
// live card counting, matching the reference behavior.
const numberValueTotal = 78

// View is a read-only projection of the match state a strategy may consult.
// It carries only what a player at the table could legitimately know.
type View struct {
	// NumberValues are the player's number card values in draw order
	NumberValues []int

	// NumberCount is the count of number cards held
	NumberCount int

	// Score is the player's current unbonused round score
	Score int

	// HasSecondChance is true if the player holds an unconsumed Second Chance
	HasSecondChance bool

	// PlayerCount is the number of players in the match
	PlayerCount int

	// ActiveCount is the number of players still active this round
	ActiveCount int
}

// Strategy decides whether a player should hit or stay. ShouldHit is called
// only while the player is active and has not yet resolved the round.
type Strategy interface {
	// Name returns a short identifier used in aggregated statistics
	Name() string

	// ShouldHit returns true to draw, false to stay and bank the score
	ShouldHit(view View) bool
}

// bustProbability estimates the chance the next draw busts the hand:
// the sum of distinct held values over the per-copy number value total.
func bustProbability(values []int) float64 {
	seen := make(map[int]bool)
	sum := 0
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			sum += v
		}
	}

	return float64(sum) / float64(numberValueTotal)
}

// distinctCount returns the number of distinct values
func distinctCount(values []int) int {
	seen := make(map[int]bool)
	for _, v := range values {
		seen[v] = true
	}

	return len(seen)
}
