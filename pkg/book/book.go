// Package book implements a tiny fixed opening book: the first couple of
// plies are scripted to avoid searching a nearly symmetric opening
// position, the way the teacher's engine.Book consults a line table before
// falling back to search.
package book

import (
	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/hive"
	"github.com/herohde/hive/pkg/move"
	"github.com/herohde/hive/pkg/piece"
)

// entry describes how to resolve a book move against the live game state:
// the kind of piece to place, and where. An empty board always places at
// the origin; otherwise the piece is placed relative to the most recently
// played piece, in the given direction.
type entry struct {
	kind      piece.Kind
	direction hexgeom.Direction
}

// Book is a flat table from turn number to a scripted placement. It is
// intentionally tiny: once a turn number has no entry, or the scripted
// placement is not actually legal (e.g. a non-standard expansions set or a
// deviation earlier in the game), the caller should fall back to search.
type Book struct {
	entries map[int]entry
}

// Default is the book used by the standard engine: open with a
// grasshopper, answered by a grasshopper to its west.
func Default() *Book {
	return &Book{
		entries: map[int]entry{
			1: {kind: piece.Grasshopper},
			2: {kind: piece.Grasshopper, direction: hexgeom.W},
		},
	}
}

// Find returns a book move for the current turn, if the book covers it and
// the resolved placement is a legal destination in the live position.
func (b *Book) Find(g *game.Game) (move.Move, bool) {
	e, ok := b.entries[g.TurnNumber]
	if !ok {
		return move.Move{}, false
	}

	cp := g.CurrentPlayer()
	var pc *piece.Piece
	for _, p := range cp.Reserve() {
		if p.Kind == e.kind {
			pc = p
			break
		}
	}
	if pc == nil {
		return move.Move{}, false
	}

	var target hexgeom.Point
	if len(g.MoveList) == 0 {
		target = hexgeom.Origin
	} else {
		last := g.MoveList[len(g.MoveList)-1]
		target = last.Piece.Point.Ground().Neighbor(e.direction)
	}

	if !legalDestination(g.Hive, pc, target) {
		return move.Move{}, false
	}
	return move.Move{Piece: pc, Start: hexgeom.None, End: target}, true
}

func legalDestination(h *hive.Board, pc *piece.Piece, target hexgeom.Point) bool {
	for _, p := range hive.LegalDestinations(h, pc) {
		if p.Ground() == target.Ground() {
			return true
		}
	}
	return false
}
