package puzzle

import "fmt"

// UnknownPuzzleError is returned when a key has no registered solver.
type UnknownPuzzleError struct {
	Key Key
}

func (e *UnknownPuzzleError) Error() string {
	return fmt.Sprintf("no solver registered for %s", e.Key)
}

// InputEncodingError is returned when the puzzle input bytes are not valid
// UTF-8 text.
type InputEncodingError struct {
	Key Key
}

func (e *InputEncodingError) Error() string {
	return fmt.Sprintf("input for %s is not valid UTF-8 text", e.Key)
}

// SolveError wraps a solver's rejection of its input, keeping the key the
// failure belongs to.
type SolveError struct {
	Key Key
	Err error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solving %s: %v", e.Key, e.Err)
}

func (e *SolveError) Unwrap() error {
	return e.Err
}
