// Package searchctl wraps a fixed-depth search.Search into an iteratively
// deepening, cancellable background search, grounded on the teacher's
// pkg/search/searchctl (same Launcher/Handle/Options shape, same time
// control heuristic), adapted from the chess board to the Hive game
// controller. A time control without a move count is split as if 40 moves
// remain.
package searchctl

import (
	"context"
	"fmt"
	"time"

	"github.com/herohde/hive/pkg/piece"
	"github.com/seekerror/stdlib/pkg/lang"
)

// TimeControl represents a simple sudden-death or multi-move time budget
// for one side.
type TimeControl struct {
	White, Black time.Duration
	Moves        int // 0 == rest of game
}

// Limits returns a soft and hard search time limit for the given color. No
// new iteration should be started after the soft limit; the hard limit
// forces a halt regardless of how far the current iteration has gotten.
func (t TimeControl) Limits(c piece.Color) (time.Duration, time.Duration) {
	remainder := t.White
	if c == piece.Black {
		remainder = t.Black
	}

	moves := time.Duration(40)
	if t.Moves > 0 {
		moves = time.Duration(t.Moves) + 1
	}

	soft := remainder / (2 * moves)
	hard := 3 * soft
	return soft, hard
}

func (t TimeControl) String() string {
	if t.Moves == 0 {
		return fmt.Sprintf("%.1f<>%.1f", t.White.Seconds(), t.Black.Seconds())
	}
	return fmt.Sprintf("%.1f<>%.1f[moves=%v]", t.White.Seconds(), t.Black.Seconds(), t.Moves)
}

// EnforceTimeControl schedules a hard halt and returns the soft limit, if a
// time control is set.
func EnforceTimeControl(ctx context.Context, h Handle, tc lang.Optional[TimeControl], turn piece.Color) (time.Duration, bool) {
	c, ok := tc.V()
	if !ok {
		return 0, false
	}

	soft, hard := c.Limits(turn)
	time.AfterFunc(hard, func() {
		h.Halt()
	})
	return soft, true
}
