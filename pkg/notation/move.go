package notation

import (
	"fmt"
	"strings"

	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/move"
)

// PassToken is the literal notation for passing a turn.
const PassToken = "pass"

// ParseMove parses a single move-notation entry against g's current
// position: "pass", a bare "cXn" first placement, or "cXn rel cXn" where
// rel is a direction marker attached to the left or right of the anchor
// piece, or no marker at all (covering). The elided color on the moving
// piece defaults to the side to move.
func ParseMove(s string, g *game.Game) (move.Move, error) {
	s = strings.TrimSpace(s)
	if s == PassToken {
		return move.Move{}, nil
	}

	tokens := strings.Fields(s)
	switch len(tokens) {
	case 1:
		id, err := ParsePieceID(tokens[0], g.Current)
		if err != nil {
			return move.Move{}, &game.InputError{Reason: err.Error()}
		}
		pc, err := findPiece(g, id)
		if err != nil {
			return move.Move{}, err
		}
		return move.Move{Piece: pc, Start: pc.Point, End: hexgeom.Origin}, nil

	case 2:
		movingID, err := ParsePieceID(tokens[0], g.Current)
		if err != nil {
			return move.Move{}, &game.InputError{Reason: err.Error()}
		}
		movingPc, err := findPiece(g, movingID)
		if err != nil {
			return move.Move{}, err
		}

		anchorText, marker, side := splitAnchor(tokens[1])
		anchorID, err := ParsePieceID(anchorText, g.Current)
		if err != nil {
			return move.Move{}, &game.InputError{Reason: err.Error()}
		}
		anchorPc, err := findPiece(g, anchorID)
		if err != nil {
			return move.Move{}, err
		}
		if !anchorPc.IsPlayed() {
			return move.Move{}, &game.InputError{Reason: fmt.Sprintf("anchor %v is not on the board", anchorID)}
		}

		var target hexgeom.Point
		switch side {
		case prefixMarker:
			d, ok := leftSide[marker]
			if !ok {
				return move.Move{}, &game.InputError{Reason: fmt.Sprintf("unknown direction marker %q", string(marker))}
			}
			target = anchorPc.Point.Ground().Neighbor(d)
		case suffixMarker:
			d, ok := rightSide[marker]
			if !ok {
				return move.Move{}, &game.InputError{Reason: fmt.Sprintf("unknown direction marker %q", string(marker))}
			}
			target = anchorPc.Point.Ground().Neighbor(d)
		default: // noMarker: covering
			target = anchorPc.Point.Ground()
		}

		return move.Move{Piece: movingPc, Start: movingPc.Point, End: target}, nil

	default:
		return move.Move{}, &game.InputError{Reason: fmt.Sprintf("malformed move notation %q", s)}
	}
}

// FormatMove renders m in the same notation ParseMove accepts, using g's
// position *before* m is applied to pick a stable anchor. The first move
// of the game (empty hive) is rendered bare; a covering move (landing atop
// an occupied column) is rendered with no marker; otherwise an occupied
// neighbour of the destination is picked deterministically (lowest
// direction index) as the anchor.
func FormatMove(g *game.Game, m move.Move) (string, error) {
	if m.IsPass() {
		return PassToken, nil
	}

	movingStr := m.Piece.ID().String()
	if g.Hive.NumPieces() == 0 {
		return movingStr, nil
	}

	ground := m.End.Ground()
	if g.Hive.HasPiece(ground) {
		top, _ := g.Hive.TopAt(ground)
		return fmt.Sprintf("%v %v", movingStr, top.ID()), nil
	}

	var anchor *fmtAnchor
	for _, n := range ground.Neighbors() {
		top, ok := g.Hive.TopAt(n)
		if !ok || top == m.Piece {
			continue
		}
		d, ok := hexgeom.DirectionOf(top.Point.Ground(), ground)
		if !ok {
			continue
		}
		anchor = &fmtAnchor{id: top.ID().String(), dir: d}
		break
	}
	if anchor == nil {
		return "", &game.InputError{Reason: fmt.Sprintf("no anchor neighbour found for %v", m)}
	}

	if r, ok := rightSideInverse[anchor.dir]; ok {
		return fmt.Sprintf("%v %v%c", movingStr, anchor.id, r), nil
	}
	if l, ok := leftSideInverse[anchor.dir]; ok {
		return fmt.Sprintf("%v %c%v", movingStr, l, anchor.id), nil
	}
	return "", &game.InputError{Reason: fmt.Sprintf("no direction marker for %v", anchor.dir)}
}

type fmtAnchor struct {
	id  string
	dir hexgeom.Direction
}
