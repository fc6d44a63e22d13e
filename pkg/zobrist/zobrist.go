// Package zobrist computes incremental position hashes for the hive board.
//
// Unlike a chess Zobrist table (board/zobrist.go in the teacher), a hive's
// coordinate space is unbounded, so keys cannot be pre-allocated into a
// fixed array: they are drawn lazily, the first time a given
// (color, kind, point) triple is observed, and memoized for the lifetime
// of the table.
package zobrist

import (
	"math/rand"

	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/piece"
)

// Hash is a position hash based on piece-points. It hashes positions that
// are equal up to piece identity-and-location plus side-to-move to the same
// value, with vanishing collision probability.
type Hash uint64

type key struct {
	color piece.Color
	kind  piece.Kind
	point hexgeom.Point
}

// Table is a pseudo-randomized, lazily populated table for computing
// position hashes. Not thread-safe; a Table is owned by a single Hive.
type Table struct {
	rand    *rand.Rand
	keys    map[key]Hash
	sideKey Hash
}

// New creates a zobrist table. The same seed always produces the same
// sequence of keys, which makes tests reproducible.
func New(seed int64) *Table {
	r := rand.New(rand.NewSource(seed))
	return &Table{
		rand:    r,
		keys:    map[key]Hash{},
		sideKey: Hash(r.Uint64()),
	}
}

// SideKey returns the key XOR-ed in when it becomes BLACK's turn to move.
func (t *Table) SideKey() Hash {
	return t.sideKey
}

// KeyFor returns the key for a (color, kind, point) triple, assigning and
// memoizing a fresh random key the first time the triple is seen.
func (t *Table) KeyFor(color piece.Color, kind piece.Kind, point hexgeom.Point) Hash {
	k := key{color: color, kind: kind, point: point}
	if h, ok := t.keys[k]; ok {
		return h
	}
	h := Hash(t.rand.Uint64())
	t.keys[k] = h
	return h
}
