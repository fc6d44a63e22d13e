package piece

import (
	"fmt"

	"github.com/herohde/hive/pkg/hexgeom"
)

// Piece is a mutable record of a single playing piece: its identity
// (Color, Kind, Number) never changes, but its Point does as it is placed,
// moved and picked up. Number is an ordinal (1..3) disambiguating pieces of
// a kind with more than one copy; zero for unique kinds (Queen, Ladybug,
// Mosquito).
//
// A piece is "played" iff Point is not hexgeom.None.
type Piece struct {
	Color  Color
	Kind   Kind
	Number int

	Point hexgeom.Point
}

// ID is the (color, kind, number) identity of a piece, stable for its
// lifetime.
type ID struct {
	Color  Color
	Kind   Kind
	Number int
}

func (p *Piece) ID() ID {
	return ID{Color: p.Color, Kind: p.Kind, Number: p.Number}
}

// IsPlayed returns true iff the piece is on the board.
func (p *Piece) IsPlayed() bool {
	return !p.Point.IsNone()
}

func (id ID) String() string {
	c := id.Color.String()
	if id.Number == 0 {
		return fmt.Sprintf("%v%v", c, id.Kind)
	}
	return fmt.Sprintf("%v%v%v", c, id.Kind, id.Number)
}

func (p *Piece) String() string {
	return fmt.Sprintf("%v@%v", p.ID(), p.Point)
}

// NewRoster constructs the full starting roster of unplayed pieces for one
// color, given the set of enabled expansion kinds (in addition to Base).
func NewRoster(color Color, expansions []Kind) []*Piece {
	kinds := append(append([]Kind{}, Base...), expansions...)

	var ret []*Piece
	for _, k := range kinds {
		n := k.Count()
		if n == 1 {
			ret = append(ret, &Piece{Color: color, Kind: k, Point: hexgeom.None})
			continue
		}
		for i := 1; i <= n; i++ {
			ret = append(ret, &Piece{Color: color, Kind: k, Number: i, Point: hexgeom.None})
		}
	}
	return ret
}
