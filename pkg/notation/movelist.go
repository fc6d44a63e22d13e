package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/zobrist"
)

var turnPrefix = regexp.MustCompile(`^\d+\.\s*`)

// ParseExpansions parses the uppercase expansions string (a subset of
// "LM") into the piece kinds it enables.
func ParseExpansions(s string) ([]piece.Kind, error) {
	var ret []piece.Kind
	for _, r := range s {
		k, ok := piece.Expansions[r]
		if !ok {
			return nil, &game.InputError{Reason: fmt.Sprintf("unknown expansion %q", string(r))}
		}
		ret = append(ret, k)
	}
	return ret, nil
}

// TimeBudget is the parsed form of the "total_ms,white_used_ms,black_used_ms"
// time-control CSV (§6). The fixed-depth core ignores it; it is retained
// for the iterative-deepening launcher and diagnostics.
type TimeBudget struct {
	Total     time.Duration
	WhiteUsed time.Duration
	BlackUsed time.Duration
}

// ParseTimeControl parses the time-control CSV. An empty string yields a
// zero TimeBudget (no budget).
func ParseTimeControl(csv string) (TimeBudget, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return TimeBudget{}, nil
	}

	fields := strings.Split(csv, ",")
	if len(fields) != 3 {
		return TimeBudget{}, &game.InputError{Reason: fmt.Sprintf("time control %q: expected 3 fields", csv)}
	}

	ms := make([]int64, 3)
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil || v < 0 {
			return TimeBudget{}, &game.InputError{Reason: fmt.Sprintf("time control %q: invalid field %q", csv, f)}
		}
		ms[i] = v
	}
	return TimeBudget{
		Total:     time.Duration(ms[0]) * time.Millisecond,
		WhiteUsed: time.Duration(ms[1]) * time.Millisecond,
		BlackUsed: time.Duration(ms[2]) * time.Millisecond,
	}, nil
}

// ParseMoveList parses the comma-separated "N. <move-notation>" move list
// and replays it onto a freshly constructed game, in order. An empty
// string yields a game at the starting position. Turn numbers are not
// cross-checked against the controller's own counter; they are only
// glue-level bookkeeping for the external format.
func ParseMoveList(zt *zobrist.Table, expansions []piece.Kind, csv string) (*game.Game, error) {
	g := game.New(zt, expansions)

	csv = strings.TrimSpace(csv)
	if csv == "" {
		return g, nil
	}

	for _, entry := range strings.Split(csv, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		entry = turnPrefix.ReplaceAllString(entry, "")
		entry = strings.TrimSpace(entry)

		if entry == PassToken {
			if err := g.PlayPass(); err != nil {
				return nil, err
			}
			continue
		}

		m, err := ParseMove(entry, g)
		if err != nil {
			return nil, err
		}
		if err := g.PlayMove(m); err != nil {
			return nil, err
		}
	}
	return g, nil
}
