// Package hive contains the hex board representation and utilities: stacked
// pieces, neighbour/gate/slide/entry-point queries, and the articulation
// ("breaks hive") test. It owns the Zobrist state for the position.
//
// Grounded on the teacher's board.Board/Position pairing: a columnar piece
// store with incremental Zobrist hashing and explicit invariants, adapted
// from a fixed 8x8 bitboard to an unbounded hex-column map.
package hive

import (
	"fmt"

	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/zobrist"
)

type column struct {
	x, y int
}

func columnOf(p hexgeom.Point) column {
	return column{x: p.X, y: p.Y}
}

// Board is an unbounded hexagonal board of stacked pieces. Not thread-safe.
type Board struct {
	zt      *zobrist.Table
	columns map[column][]*piece.Piece // bottom..top
	state   zobrist.Hash
	turn    piece.Color
	count   int // total played pieces
}

// New creates an empty board using the given Zobrist table. turn is WHITE
// at game start (the side key is not XOR-ed in for White to move).
func New(zt *zobrist.Table) *Board {
	return &Board{
		zt:      zt,
		columns: map[column][]*piece.Piece{},
	}
}

// State returns the current rolling Zobrist hash, including the
// side-to-move key if it is BLACK's turn.
func (b *Board) State() zobrist.Hash {
	return b.state
}

// Turn returns the side whose move it is, as tracked for Zobrist purposes.
// The hive itself has no turn notion; the owning Game keeps this in sync.
func (b *Board) Turn() piece.Color {
	return b.turn
}

// FlipTurn XORs in the side key and flips the tracked turn. Called by the
// game controller on every make/unmake.
func (b *Board) FlipTurn() {
	b.state ^= zobrist.Hash(b.zt.SideKey())
	b.turn = b.turn.Opponent()
}

// NumPieces returns the total number of played pieces (across all stacks).
func (b *Board) NumPieces() int {
	return b.count
}

// TopAt returns the topmost piece at the column (p.X, p.Y), if any.
func (b *Board) TopAt(p hexgeom.Point) (*piece.Piece, bool) {
	col := b.columns[columnOf(p)]
	if len(col) == 0 {
		return nil, false
	}
	return col[len(col)-1], true
}

// PiecesAt returns the bottom-to-top stack at the column (p.X, p.Y).
func (b *Board) PiecesAt(p hexgeom.Point) []*piece.Piece {
	col := b.columns[columnOf(p)]
	ret := make([]*piece.Piece, len(col))
	copy(ret, col)
	return ret
}

// Height returns the number of pieces stacked at the column (p.X, p.Y).
func (b *Board) Height(p hexgeom.Point) int {
	return len(b.columns[columnOf(p)])
}

// HasPiece returns true iff the column (p.X, p.Y) is occupied.
func (b *Board) HasPiece(p hexgeom.Point) bool {
	return len(b.columns[columnOf(p)]) > 0
}

// Pickup removes pc from its column, deleting the column if it becomes
// empty, and XORs its Zobrist key out of the rolling state. pc must
// currently be the top of its column. pc.Point is left unchanged ("suspended")
// until a matching Putdown (or the caller resets it to hexgeom.None, for an
// unmake of a placement).
func (b *Board) Pickup(pc *piece.Piece) {
	p := pc.Point
	col := columnOf(p)
	stack := b.columns[col]
	if len(stack) == 0 || stack[len(stack)-1] != pc {
		panic(fmt.Sprintf("pickup: %v is not the top of its column", pc))
	}

	b.state ^= b.zt.KeyFor(pc.Color, pc.Kind, p)
	stack = stack[:len(stack)-1]
	if len(stack) == 0 {
		delete(b.columns, col)
	} else {
		b.columns[col] = stack
	}
	b.count--
}

// Putdown places pc atop the column (p.X, p.Y). The effective z is one more
// than the current max in that column, or zero if empty. Mutates pc.Point
// and XORs in the new Zobrist key.
func (b *Board) Putdown(pc *piece.Piece, p hexgeom.Point) {
	col := columnOf(p)
	stack := b.columns[col]
	z := len(stack)
	resolved := hexgeom.Point{X: p.X, Y: p.Y, Z: z}

	pc.Point = resolved
	b.columns[col] = append(stack, pc)
	b.state ^= b.zt.KeyFor(pc.Color, pc.Kind, resolved)
	b.count++
}

// AdjacentPoints returns the six neighbours of p, in direction index order.
func (b *Board) AdjacentPoints(p hexgeom.Point) [hexgeom.NumDirections]hexgeom.Point {
	return p.Neighbors()
}

// IsInGate returns true iff five or six of p's neighbours are occupied.
// Gates block sliding entry but not climbing.
func (b *Board) IsInGate(p hexgeom.Point) bool {
	n := 0
	for _, q := range b.AdjacentPoints(p) {
		if b.HasPiece(q) {
			n++
		}
	}
	return n >= 5
}

// HasTwoEmptyAdjacent returns true iff any two cyclically-consecutive
// neighbours of p are both empty. Required for a ground-slide piece to
// leave p.
func (b *Board) HasTwoEmptyAdjacent(p hexgeom.Point) bool {
	nbrs := b.AdjacentPoints(p)
	for d := 0; d < hexgeom.NumDirections; d++ {
		next := (d + 1) % hexgeom.NumDirections
		if !b.HasPiece(nbrs[d]) && !b.HasPiece(nbrs[next]) {
			return true
		}
	}
	return false
}

// occupiedColumns returns every occupied column's ground point.
func (b *Board) occupiedColumns() []hexgeom.Point {
	ret := make([]hexgeom.Point, 0, len(b.columns))
	for c := range b.columns {
		ret = append(ret, hexgeom.Point{X: c.x, Y: c.y})
	}
	return ret
}

// EntryPoints returns the set of empty hexes eligible to receive a fresh
// placement for color: adjacent to at least one piece of color and
// adjacent to no piece of the opposite color. Reduces to the origin on an
// empty board and to all six neighbours of the origin when exactly one
// piece is on the board.
func (b *Board) EntryPoints(color piece.Color) []hexgeom.Point {
	cols := b.occupiedColumns()
	if len(cols) == 0 {
		return []hexgeom.Point{hexgeom.Origin}
	}
	if len(cols) == 1 {
		p := cols[0].Neighbors()
		return p[:]
	}

	seen := map[hexgeom.Point]bool{}
	var ret []hexgeom.Point
	for _, c := range cols {
		for _, n := range c.Neighbors() {
			if b.HasPiece(n) || seen[n] {
				continue
			}
			seen[n] = true

			ownOnly := true
			for _, nn := range n.Neighbors() {
				if top, ok := b.TopAt(nn); ok && top.Color != color {
					ownOnly = false
					break
				}
			}
			if !ownOnly {
				continue
			}

			hasOwn := false
			for _, nn := range n.Neighbors() {
				if top, ok := b.TopAt(nn); ok && top.Color == color {
					hasOwn = true
					break
				}
			}
			if hasOwn {
				ret = append(ret, n)
			}
		}
	}
	return ret
}

// IsBrokenWithout is the articulation test: with pc (the top of its column)
// temporarily lifted, flood the occupancy graph over hex-adjacent occupied
// columns starting from any one remaining column. Returns true iff not all
// remaining occupied columns are reached, i.e. the hive would split.
//
// A column that still has pieces under pc after the lift (beetle/mosquito
// stacking) keeps its place in the graph -- only a column that becomes
// fully empty disappears from it.
func (b *Board) IsBrokenWithout(pc *piece.Piece) bool {
	b.Pickup(pc)
	defer b.Putdown(pc, pc.Point)

	cols := b.occupiedColumns()
	if len(cols) == 0 {
		return false
	}

	visited := map[hexgeom.Point]bool{cols[0]: true}
	stack := []hexgeom.Point{cols[0]}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range cur.Neighbors() {
			if !b.HasPiece(n) || visited[n] {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
	return len(visited) < len(cols)
}

// SurroundedQueenColors returns the colors whose queen has all six
// neighbours occupied.
func (b *Board) SurroundedQueenColors() []piece.Color {
	var ret []piece.Color
	for _, col := range b.columns {
		for _, pc := range col {
			if pc.Kind != piece.Queen {
				continue
			}
			surrounded := true
			for _, n := range pc.Point.Neighbors() {
				if !b.HasPiece(n) {
					surrounded = false
					break
				}
			}
			if surrounded {
				ret = append(ret, pc.Color)
			}
		}
	}
	return ret
}

func (b *Board) String() string {
	return fmt.Sprintf("hive{pieces=%v, columns=%v, hash=%x}", b.count, len(b.columns), uint64(b.state))
}
