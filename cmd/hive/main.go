// Command hive is the single-shot CLI entrypoint for the Hive engine
// (spec §6 process contract): given a time control, the move list played
// so far and the enabled expansions, it prints the chosen move to stdout
// and exits non-zero on a parse or rule violation.
//
// Grounded on cmd/morlock/main.go (flag-based options, logw diagnostics)
// and pkg/engine/engine.go (Reset/Move replay flow), collapsed from a
// long-lived UCI/console engine process into one fixed-depth decision per
// invocation, per spec §6's "pure function of its arguments" contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/hive/pkg/book"
	"github.com/herohde/hive/pkg/eval"
	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/notation"
	"github.com/herohde/hive/pkg/search"
	"github.com/herohde/hive/pkg/zobrist"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	timeControl = flag.String("timecontrol", "", "time control as total_ms,white_used_ms,black_used_ms")
	moveList    = flag.String("moves", "", "comma-separated move list: \"1. wG1, 2. bG1 -wG1, ...\"")
	expansions  = flag.String("expansions", "", "enabled expansion pieces, a subset of \"LM\"")
	depth       = flag.Int("depth", 2, "fixed search horizon, in plies")
	hashMB      = flag.Uint("hash", 0, "transposition table size in MB (zero disables it)")
	seed        = flag.Int64("seed", 0, "zobrist table seed")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: hive [options]

HIVE is a fixed-depth negamax engine for the abstract strategy game Hive.
It reads an opening position and prints the chosen move to stdout.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "hive %v: depth=%v, hash=%vMB, expansions=%q", version, *depth, *hashMB, *expansions)

	move, err := run(ctx)
	if err != nil {
		logw.Exitf(ctx, "%v", err)
	}

	fmt.Println(move)
}

func run(ctx context.Context) (string, error) {
	exp, err := notation.ParseExpansions(*expansions)
	if err != nil {
		return "", err
	}

	budget, err := notation.ParseTimeControl(*timeControl)
	if err != nil {
		return "", err
	}
	logw.Debugf(ctx, "time budget: %+v", budget)

	zt := zobrist.New(*seed)
	g, err := notation.ParseMoveList(zt, exp, *moveList)
	if err != nil {
		return "", err
	}
	g.White.TimeUsedMs = budget.WhiteUsed.Milliseconds()
	g.Black.TimeUsedMs = budget.BlackUsed.Milliseconds()

	logw.Infof(ctx, "position: %v", g)

	if w := g.Winner(); w != game.None {
		return "", fmt.Errorf("position is already decided: %v", w)
	}

	if len(g.LegalMoves()) == 0 {
		logw.Infof(ctx, "no legal moves: passing")
		return notation.PassToken, nil
	}

	if m, ok := book.Default().Find(g); ok {
		logw.Infof(ctx, "book move: %v", m)
		return notation.FormatMove(g, m)
	}

	var tt search.TranspositionTable = search.NoTranspositionTable{}
	if *hashMB > 0 {
		tt = search.NewTranspositionTable(uint64(*hashMB) << 20 / 32)
	}

	n := search.Negamax{TT: tt, Eval: eval.Evaluator{}}
	res, err := n.Search(ctx, g, *depth)
	if err != nil {
		return "", err
	}
	if !res.HasMove {
		return "", fmt.Errorf("search returned no move at depth %v for a non-terminal position", *depth)
	}

	logw.Infof(ctx, "search: depth=%v score=%v nodes=%v evaluations=%v move=%v",
		*depth, res.Score, res.Nodes, res.Evaluations, res.Move)

	return notation.FormatMove(g, res.Move)
}
