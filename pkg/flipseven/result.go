package flipseven

// ParticipantResult is the final state of one participant after a match
type ParticipantResult struct {
	Position int    `json:"position"`
	Strategy string `json:"strategy"`

	// TotalScore is the participant's final cumulative score
	TotalScore int `json:"totalScore"`

	// Busted reports whether the participant busted in the final round
	Busted bool `json:"busted"`

	// FlipSeven reports whether the participant held a flip 7 when the
	// match ended
	FlipSeven bool `json:"flipSeven"`
}

// MatchResult is the outcome of a completed match
type MatchResult struct {
	// ID uniquely identifies the match in exported results
	ID string `json:"id"`

	// WinnerPosition is the seat index of the winner
	WinnerPosition int `json:"winnerPosition"`

	// Rounds is the number of rounds the match took
	Rounds int `json:"rounds"`

	Participants []ParticipantResult `json:"participants"`
}
