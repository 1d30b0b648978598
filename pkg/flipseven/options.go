package flipseven

// Options are options for creating a new Flip 7 match
type Options struct {
	// TargetScore is the cumulative score that ends the match. Default: 200
	TargetScore int

	// MaxTurnsPerRound bounds the round loop against runaway strategies.
	// Default: 100
	MaxTurnsPerRound int

	// MaxNumberCards is the number-card count at which a player is forced to
	// stay. Default: 10
	MaxNumberCards int
}

// DefaultOptions returns the default options for a Flip 7 match
func DefaultOptions() Options {
	return Options{
		TargetScore:      200,
		MaxTurnsPerRound: 100,
		MaxNumberCards:   10,
	}
}
