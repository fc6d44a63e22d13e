// Package search implements fixed-horizon negamax with alpha-beta pruning
// and a transposition table over the Hive game controller, grounded on the
// teacher's search.AlphaBeta but restructured as single-sign negamax (one
// recursive call per node rather than maximizing/minimizing branches) to
// match the specification's side-to-move-relative scoring.
package search

import (
	"context"
	"errors"
	"sort"

	"github.com/herohde/hive/pkg/eval"
	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/move"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrHalted is returned when the context is cancelled mid-search.
var ErrHalted = errors.New("search: halted")

const (
	winScore       = 1<<15 - 1
	contemptFactor = -5 // draws score -contemptFactor = 5 from the mover's perspective.
)

// Result is the outcome of a fixed-depth search.
type Result struct {
	Nodes       uint64
	Evaluations uint64
	Score       eval.Score
	Move        move.Move
	HasMove     bool
}

// Negamax runs a fixed-horizon search from g's current position and depth,
// without mutating g on return (every make is paired with an unmake).
type Negamax struct {
	TT   TranspositionTable
	Eval eval.Evaluator
}

func (n Negamax) Search(ctx context.Context, g *game.Game, depth int) (Result, error) {
	tt := n.TT
	if tt == nil {
		tt = NoTranspositionTable{}
	}

	r := &run{tt: tt, eval: n.Eval, g: g}
	score, best, ok := r.search(ctx, depth, eval.NegInfScore, eval.InfScore)
	if score.IsInvalid() {
		return Result{}, ErrHalted
	}
	return Result{Nodes: r.nodes, Evaluations: r.evaluations, Score: score, Move: best, HasMove: ok}, nil
}

type run struct {
	tt          TranspositionTable
	eval        eval.Evaluator
	g           *game.Game
	nodes       uint64
	evaluations uint64
}

// search returns the score, best move (if any) and whether a move was
// available, all relative to the side to move at this node.
func (r *run) search(ctx context.Context, depth int, alpha, beta eval.Score) (eval.Score, move.Move, bool) {
	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, move.Move{}, false
	}
	r.nodes++

	hash := r.g.Hive.State()
	if e, ok := r.tt.Read(hash); ok && e.Depth >= depth {
		switch e.Bound {
		case ExactBound:
			return e.Value, e.Move, e.Move.Piece != nil
		case LowerBound:
			if e.Value >= beta {
				return beta, e.Move, e.Move.Piece != nil
			}
		case UpperBound:
			if e.Value <= alpha {
				return alpha, e.Move, e.Move.Piece != nil
			}
		}
	}

	if w := r.g.Winner(); w != game.None {
		return terminalScore(r.g, w, depth), move.Move{}, false
	}

	if depth <= 0 {
		r.evaluations++
		score := sideRelative(r.g, r.eval)
		r.tt.Write(hash, Entry{Depth: depth, Value: score, Bound: ExactBound})
		return score, move.Move{}, false
	}

	moves := orderMoves(r.g.LegalMoves())
	if len(moves) == 0 {
		r.g.MakePass()
		score, _, _ := r.search(ctx, depth-1, beta.Negate(), alpha.Negate())
		r.g.UnmakePass()
		score = eval.IncrementMateDistance(score).Negate()
		r.tt.Write(hash, Entry{Depth: depth, Value: score, Bound: ExactBound, Move: move.Move{}})
		return score, move.Move{}, false
	}

	bound := UpperBound
	best := alpha
	var bestMove move.Move
	haveBest := false

	for _, m := range moves {
		r.g.MakeMove(m)
		score, _, _ := r.search(ctx, depth-1, beta.Negate(), alpha.Negate())
		r.g.UnmakeMove(m)

		if score.IsInvalid() {
			return eval.InvalidScore, move.Move{}, false
		}
		score = eval.IncrementMateDistance(score).Negate()

		if score >= beta {
			r.tt.Write(hash, Entry{Depth: depth, Value: beta, Bound: LowerBound, Move: m})
			return beta, m, true
		}
		if best.Less(score) || !haveBest {
			best = score
			bestMove = m
			haveBest = true
			if alpha.Less(score) {
				alpha = score
				bound = ExactBound
			}
		}
	}

	r.tt.Write(hash, Entry{Depth: depth, Value: best, Bound: bound, Move: bestMove})
	return best, bestMove, true
}

// terminalScore returns the side-relative score for a decided position:
// +/-(winScore+depth) for a decisive result (larger at shallower remaining
// depth, preferring quicker wins), or the contempt value for a draw.
func terminalScore(g *game.Game, w game.Result, depth int) eval.Score {
	if w == game.Draw {
		return -contemptFactor
	}
	winner, _ := w.WinnerColor()
	if winner == g.Current {
		return eval.Score(winScore + depth)
	}
	return -eval.Score(winScore + depth)
}

func sideRelative(g *game.Game, e eval.Evaluator) eval.Score {
	score := e.Evaluate(g.Hive, g.White, g.Black)
	if g.Current.Unit() < 0 {
		return -score
	}
	return score
}

// orderMoves is intentionally weak but stable: moves of already-played
// pieces are tried before fresh placements, per the specification.
func orderMoves(moves []move.Move) []move.Move {
	ordered := make([]move.Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return !ordered[i].IsPlacement() && ordered[j].IsPlacement()
	})
	return ordered
}
