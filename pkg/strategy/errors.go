package strategy

import "fmt"

// ParameterError is returned when a strategy is constructed with a parameter
// outside its sane range
type ParameterError struct {
	Strategy  string
	Parameter string
	Reason    string
}

func (p ParameterError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", p.Strategy, p.Parameter, p.Reason)
}
