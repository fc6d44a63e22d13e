package game

import "fmt"

// InputError marks a malformed move string, unknown piece identifier or
// unknown anchor piece. Propagated to the driver, which reports it to
// stderr and terminates the turn.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error: %v", e.Reason)
}

// MoveError marks a syntactically-valid move that violates a game rule:
// queen-by-turn-four, moving before the queen is placed, a destination
// outside the legal set, or passing when moves exist.
type MoveError struct {
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move error: %v", e.Reason)
}
