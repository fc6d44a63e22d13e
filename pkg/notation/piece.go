// Package notation parses and formats the textual external interface
// described in spec §6: time-control CSV, the comma-separated move list
// ("N. <move-notation>" entries), the expansions letter subset, and the
// cXn / cXn rel cXn move notation itself.
//
// This is glue, not core: §1 names move-text parsing/formatting an
// "external collaborator" of the hive model and search core. It is
// grounded on the teacher's board.ParseMove (board/move.go) -- a small
// hand-rolled, rune-indexed parser returning a wrapped error on the first
// malformed field -- generalized from 4-5 character algebraic squares to
// Hive's piece-id-plus-relative-anchor grammar.
package notation

import (
	"fmt"

	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/piece"
)

// ParsePieceID parses a "cXn" piece identifier: an optional color letter
// (defaulting to defaultColor if elided), a required kind letter, and an
// optional ordinal digit (1-3, absent for kinds with a single copy).
func ParsePieceID(token string, defaultColor piece.Color) (piece.ID, error) {
	runes := []rune(token)
	if len(runes) == 0 {
		return piece.ID{}, fmt.Errorf("notation: empty piece id")
	}

	idx := 0
	color := defaultColor
	if c, ok := piece.ParseColor(runes[idx]); ok {
		color = c
		idx++
	}
	if idx >= len(runes) {
		return piece.ID{}, fmt.Errorf("notation: missing piece kind in %q", token)
	}

	kind, ok := piece.ParseKind(runes[idx])
	if !ok {
		return piece.ID{}, fmt.Errorf("notation: unknown piece kind in %q", token)
	}
	idx++

	number := 0
	if idx < len(runes) {
		d := runes[idx]
		if d < '1' || d > '3' {
			return piece.ID{}, fmt.Errorf("notation: invalid ordinal in %q", token)
		}
		number = int(d - '0')
		idx++
	}
	if idx != len(runes) {
		return piece.ID{}, fmt.Errorf("notation: trailing characters in %q", token)
	}
	return piece.ID{Color: color, Kind: kind, Number: number}, nil
}

// findPiece resolves an ID to a piece in g, looking it up in the owning
// color's roster. Returns an InputError if the piece is unknown.
func findPiece(g *game.Game, id piece.ID) (*piece.Piece, error) {
	pc, ok := g.PlayerOf(id.Color).Find(id)
	if !ok {
		return nil, &game.InputError{Reason: fmt.Sprintf("unknown piece %v", id)}
	}
	return pc, nil
}
