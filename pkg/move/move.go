// Package move defines the Move value type shared by the game controller,
// search and notation layers.
package move

import (
	"fmt"

	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/piece"
)

// Move is a single ply: placing or relocating Piece. Start is hexgeom.None
// for a placement from reserve.
type Move struct {
	Piece *piece.Piece
	Start hexgeom.Point
	End   hexgeom.Point
}

// IsPass returns true iff this move represents passing the turn, the only
// legal action when the player to move has no legal moves.
func (m Move) IsPass() bool {
	return m.Piece == nil
}

// IsPlacement returns true iff this move brings a piece onto the board from
// reserve.
func (m Move) IsPlacement() bool {
	return !m.IsPass() && m.Start.IsNone()
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	if m.IsPlacement() {
		return fmt.Sprintf("%v->%v", m.Piece.ID(), m.End)
	}
	return fmt.Sprintf("%v:%v->%v", m.Piece.ID(), m.Start, m.End)
}

// Equal compares two moves by piece identity and endpoints.
func (m Move) Equal(o Move) bool {
	return m.Piece == o.Piece && m.Start == o.Start && m.End == o.End
}
