package searchctl

import (
	"context"
	"fmt"
	"strings"

	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Options hold dynamic search options. The caller may change these between
// launches.
type Options struct {
	// DepthLimit, if set, limits the search to the given ply depth. Zero value unset means no limit.
	DepthLimit lang.Optional[uint]
	// TimeControl, if set, limits the search to the given time parameters.
	TimeControl lang.Optional[TimeControl]
}

func (o Options) String() string {
	var ret []string
	if v, ok := o.DepthLimit.V(); ok {
		ret = append(ret, fmt.Sprintf("depth=%v", v))
	}
	if v, ok := o.TimeControl.V(); ok {
		ret = append(ret, fmt.Sprintf("time=%v", v))
	}
	return fmt.Sprintf("[%v]", strings.Join(ret, ", "))
}

// Launcher manages iteratively deepening searches.
type Launcher interface {
	// Launch a new search from g's current position. g is not mutated; the
	// returned channel carries successively deeper PVs and is closed once
	// the search is exhausted or halted.
	Launch(ctx context.Context, g *game.Game, tt search.TranspositionTable, opt Options) (Handle, <-chan search.PV)
}

// Handle lets the caller stop an in-flight search and retrieve its best PV
// so far.
type Handle interface {
	// Halt halts the search, if running. Idempotent.
	Halt() search.PV
}
