// Package searchctl wraps a fixed-depth search.Search into an iteratively
// deepening, cancellable background search, grounded on the teacher's
// pkg/search/searchctl (same Launcher/Handle/Options shape), adapted from
// the chess board to the Hive game controller.
package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Iterative is a search harness for iterative deepening search. It repeats
// Root.Search with increasing depth, publishing each completed iteration's
// PV, until halted, a depth limit or mate is reached, or the soft time
// limit is exceeded.
type Iterative struct {
	Root search.Search
}

func (it *Iterative) Launch(ctx context.Context, g *game.Game, tt search.TranspositionTable, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, it.Root, g, tt, opt, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv search.PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, root search.Search, g *game.Game, tt search.TranspositionTable, opt Options, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	soft, useSoft := EnforceTimeControl(ctx, h, opt.TimeControl, g.Current)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	depth := 1
	for !h.quit.IsClosed() {
		start := time.Now()

		res, err := root.Search(wctx, g, depth)
		if err != nil {
			if err == search.ErrHalted {
				return // Halt was called.
			}
			logw.Errorf(ctx, "Search failed on %v at depth=%v: %v", g, depth, err)
			return
		}

		pv := search.PV{
			Move:  res.Move,
			Score: res.Score,
			Depth: depth,
			Nodes: res.Nodes,
			Time:  time.Since(start),
		}

		logw.Debugf(ctx, "Searched %v: %v", g, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()

		if !res.HasMove {
			return // halt: no move available (terminal position or pass-only).
		}
		if limit, ok := opt.DepthLimit.V(); ok && uint(depth) == limit {
			return // halt: reached max depth
		}
		if ply, ok := pv.Score.IsMate(); ok && ply <= depth {
			return // halt: forced win/loss found within full width search. Exact result.
		}
		if useSoft && soft < time.Since(start) {
			return // halt: exceeded soft time limit. Do not start new search.
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
