// Package eval computes a static position evaluation and carries the
// mate-distance-aware Score type the search package accumulates through
// negamax.
//
// The teacher's eval.Score (eval/score.go) is a plain float32 with no
// Negate/Less/IsInvalid methods or Inf/Invalid sentinels, even though
// search/alphabeta.go, minimax.go and quiescence.go all reference exactly
// those names -- a stale snapshot in the retrieval pack. Score here is
// redesigned from the *usage* those search files establish: a signed,
// totally ordered, negatable value with a distinguished "not computed"
// sentinel and mate-distance bookkeeping, backed by a plain integer since
// the specification's evaluator returns a signed integer rather than a
// fractional pawn value.
package eval

import "fmt"

// Score is a signed evaluation, positive favors WHITE.
type Score int32

const (
	// ZeroScore is a neutral/drawn evaluation.
	ZeroScore Score = 0

	// InfScore and NegInfScore bound the search window. Mate scores are
	// encoded within (MateScore, InfScore) / (NegInfScore, -MateScore),
	// closer to Inf the fewer plies to mate.
	InfScore    Score = 1 << 20
	NegInfScore Score = -InfScore

	// MateScore is the threshold above which a score encodes a forced win.
	// An immediate win (distance 0) scores InfScore; further mates are
	// scored by subtracting the ply distance.
	MateScore = InfScore - 1000

	// InvalidScore marks a search that was cancelled mid-flight.
	InvalidScore Score = 1<<31 - 1
)

func (s Score) String() string {
	if s == InvalidScore {
		return "invalid"
	}
	return fmt.Sprintf("%v", int32(s))
}

// IsInvalid reports whether s is the cancelled-search sentinel.
func (s Score) IsInvalid() bool {
	return s == InvalidScore
}

// Negate flips perspective, preserving the invalid sentinel.
func (s Score) Negate() Score {
	if s.IsInvalid() {
		return s
	}
	return -s
}

// Less is a total order with InvalidScore sorting below everything, so a
// cancelled subtree never wins a max comparison by accident.
func (s Score) Less(o Score) bool {
	if s.IsInvalid() {
		return !o.IsInvalid()
	}
	if o.IsInvalid() {
		return false
	}
	return s < o
}

// IsMate reports whether s represents a forced win/loss, and the ply
// distance to it if so.
func (s Score) IsMate() (int, bool) {
	switch {
	case s > MateScore:
		return int(InfScore - s), true
	case s < -MateScore:
		return int(InfScore + s), true
	default:
		return 0, false
	}
}

// WinIn returns the score for a win found ply plies from the current node;
// further from the root is preferred closer to the present.
func WinIn(ply int) Score {
	return InfScore - Score(ply)
}

// LoseIn is the mirror of WinIn for a forced loss.
func LoseIn(ply int) Score {
	return -InfScore + Score(ply)
}

// IncrementMateDistance adds one ply of mate distance as a mate score is
// propagated up the tree, so shallower mates are preferred to deeper ones.
func IncrementMateDistance(s Score) Score {
	switch {
	case s.IsInvalid():
		return s
	case s > MateScore:
		return s - 1
	case s < -MateScore:
		return s + 1
	default:
		return s
	}
}
