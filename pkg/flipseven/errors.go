package flipseven

import (
	"errors"
	"fmt"
)

// ErrNilStrategy is returned when a lineup contains a nil strategy
var ErrNilStrategy = errors.New("strategy cannot be nil")

// ErrNilRandomSource is returned when no random source is provided
var ErrNilRandomSource = errors.New("random source cannot be nil")

// PlayerCountError is an error on the number of players in the match
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}
