package search

import (
	"context"
	"fmt"
	"time"

	"github.com/herohde/hive/pkg/eval"
	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/move"
)

// PV represents the principal variation for some search depth: the best
// move found, its score and some statistics about the search that found it.
type PV struct {
	Move  move.Move
	Score eval.Score
	Depth int
	Nodes uint64
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v move=%v", p.Depth, p.Score, p.Nodes, p.Time, p.Move)
}

// Search is anything that can perform a fixed-depth negamax search. Negamax
// is the only implementation; the interface exists so searchctl.Iterative
// can wrap it without depending on its concrete type.
type Search interface {
	Search(ctx context.Context, g *game.Game, depth int) (Result, error)
}
