// Package player tracks one side's roster and per-player game history.
package player

import (
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/zobrist"
)

const historyLimit = 5

// Player is one side's roster and hive-state history.
type Player struct {
	Color piece.Color

	// order is the roster in NewRoster's deterministic construction order
	// (Base/expansion kinds in fixed order, lowest Number first within a
	// kind). Pieces/Reserve iterate this slice rather than the index map,
	// so enumeration order -- and thus anything built on top of it, such
	// as move ordering or the opening book's kind lookup -- is stable for
	// a fixed (color, expansions) input instead of varying with Go's
	// randomized map iteration.
	order []*piece.Piece
	index map[piece.ID]*piece.Piece

	history []zobrist.Hash

	TimeUsedMs int64
}

// New constructs a player with a full unplayed roster for the given
// expansion set.
func New(color piece.Color, expansions []piece.Kind) *Player {
	roster := piece.NewRoster(color, expansions)

	index := make(map[piece.ID]*piece.Piece, len(roster))
	for _, pc := range roster {
		index[pc.ID()] = pc
	}

	return &Player{
		Color: color,
		order: roster,
		index: index,
	}
}

// Pieces returns every piece in the roster, played or not, in deterministic
// construction order.
func (p *Player) Pieces() []*piece.Piece {
	ret := make([]*piece.Piece, len(p.order))
	copy(ret, p.order)
	return ret
}

// Find returns the piece with the given identity, if it belongs to this
// player's roster.
func (p *Player) Find(id piece.ID) (*piece.Piece, bool) {
	pc, ok := p.index[id]
	return pc, ok
}

// HasPlayedQueen returns true iff the player's queen is on the board.
func (p *Player) HasPlayedQueen() bool {
	pc, ok := p.index[piece.ID{Color: p.Color, Kind: piece.Queen}]
	return ok && pc.IsPlayed()
}

// Queen returns the player's queen piece.
func (p *Player) Queen() *piece.Piece {
	return p.index[piece.ID{Color: p.Color, Kind: piece.Queen}]
}

// Reserve returns every unplayed piece, in deterministic construction
// order (lowest Number first within a kind).
func (p *Player) Reserve() []*piece.Piece {
	var ret []*piece.Piece
	for _, pc := range p.order {
		if !pc.IsPlayed() {
			ret = append(ret, pc)
		}
	}
	return ret
}

// PushHistory appends a hive state. The controller calls this after every
// move or pass, for the player who is then to move. History is never trimmed:
// §8's make/unmake identity property requires a PushHistory/PopHistory pair
// to restore a player exactly, and discarding the oldest entry once a game
// runs past historyLimit plies would make that pair non-invertible for the
// (rare) older entries. HasThreefoldRepetition only ever looks at the last
// historyLimit entries regardless of how long the slice grows.
func (p *Player) PushHistory(h zobrist.Hash) {
	p.history = append(p.history, h)
}

// PopHistory removes the most recently pushed hive state, for unmake.
func (p *Player) PopHistory() {
	if len(p.history) > 0 {
		p.history = p.history[:len(p.history)-1]
	}
}

// HasThreefoldRepetition reports whether this player's own history
// indicates threefold repetition: at least 5 entries, with the entries at
// offsets -1, -3 and -5 from the end equal.
func (p *Player) HasThreefoldRepetition() bool {
	n := len(p.history)
	if n < historyLimit {
		return false
	}
	last := p.history[n-1]
	return last == p.history[n-3] && last == p.history[n-5]
}
