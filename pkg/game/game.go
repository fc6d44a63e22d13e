// Package game implements the Hive game controller: make/unmake, legal move
// enumeration, rule validation and terminal-state detection.
//
// Grounded on the teacher's board.Board as a make/unmake history owner, but
// the repetition and terminal-state rules are Hive's own: per-player
// history rather than a single shared repetition map, and a queen-
// surrounded win condition rather than checkmate/stalemate.
package game

import (
	"fmt"

	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/hive"
	"github.com/herohde/hive/pkg/move"
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/player"
	"github.com/herohde/hive/pkg/zobrist"
)

// Game owns the hive, both rosters and the move history. Not thread-safe.
type Game struct {
	White, Black *player.Player
	Current      piece.Color

	TurnNumber int
	Hive       *hive.Board
	MoveList   []move.Move

	zt *zobrist.Table
}

// New constructs a game with empty rosters for the given expansion kinds
// (a subset of piece.Expansions' values), white to move, turn 1.
func New(zt *zobrist.Table, expansions []piece.Kind) *Game {
	g := &Game{
		White:      player.New(piece.White, expansions),
		Black:      player.New(piece.Black, expansions),
		Current:    piece.White,
		TurnNumber: 1,
		Hive:       hive.New(zt),
		zt:         zt,
	}
	return g
}

// PlayerOf returns this game's player record for the given color.
func (g *Game) PlayerOf(color piece.Color) *player.Player {
	if color == piece.White {
		return g.White
	}
	return g.Black
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() *player.Player {
	return g.PlayerOf(g.Current)
}

// turnOfPlayer returns the mover's own move count: 1 on turns 1-2, 2 on
// turns 3-4, etc.
func (g *Game) turnOfPlayer() int {
	return (g.TurnNumber + 1) / 2
}

// LegalMoves enumerates every (piece, destination) pair available to the
// player to move, honoring the "queen must be placed before any other
// piece may move" rule and the queen-by-turn-four constraint.
func (g *Game) LegalMoves() []move.Move {
	cp := g.CurrentPlayer()

	var candidates []*piece.Piece
	if g.turnOfPlayer() == 4 && !cp.HasPlayedQueen() {
		candidates = []*piece.Piece{cp.Queen()}
	} else if !cp.HasPlayedQueen() {
		candidates = cp.Reserve()
	} else {
		candidates = cp.Pieces()
	}

	var ret []move.Move
	for _, pc := range candidates {
		for _, dst := range hive.LegalDestinations(g.Hive, pc) {
			ret = append(ret, move.Move{Piece: pc, Start: pc.Point, End: dst})
		}
	}
	return ret
}

// PlayMove validates m against the rule checks in order (piece ownership,
// queen-before-others, queen-by-turn-four, legal destination), then makes
// it and appends it to the move list.
func (g *Game) PlayMove(m move.Move) error {
	cp := g.CurrentPlayer()

	pc, ok := cp.Find(m.Piece.ID())
	if !ok || pc != m.Piece {
		return &InputError{Reason: fmt.Sprintf("%v is not a piece of %v to move", m.Piece, cp.Color)}
	}

	if !cp.HasPlayedQueen() && !m.Start.IsNone() {
		return &MoveError{Reason: "queen not yet placed: only placements are allowed"}
	}
	if g.turnOfPlayer() == 4 && !cp.HasPlayedQueen() && pc.Kind != piece.Queen {
		return &MoveError{Reason: "queen must be placed by the player's fourth turn"}
	}

	dests := hive.LegalDestinations(g.Hive, pc)
	if !containsPoint(dests, m.End) {
		return &MoveError{Reason: fmt.Sprintf("%v is not a legal destination for %v", m.End, pc)}
	}

	g.MakeMove(m)
	g.MoveList = append(g.MoveList, m)
	return nil
}

// PlayPass passes the current player's turn. Legal only when LegalMoves is
// empty; otherwise a MoveError, per the "passing when moves exist" rule.
func (g *Game) PlayPass() error {
	if len(g.LegalMoves()) > 0 {
		return &MoveError{Reason: "cannot pass: legal moves exist"}
	}
	g.MakePass()
	g.MoveList = append(g.MoveList, move.Move{})
	return nil
}

func containsPoint(pts []hexgeom.Point, p hexgeom.Point) bool {
	for _, q := range pts {
		if q.Ground() == p.Ground() {
			return true
		}
	}
	return false
}

// MakeMove applies m unconditionally: relocates or places the piece,
// advances the turn counter, flips the side to move, and appends the
// resulting hive state to the (post-flip) current player's history. Used
// directly by search, which does its own legality bookkeeping.
func (g *Game) MakeMove(m move.Move) {
	if !m.Start.IsNone() {
		g.Hive.Pickup(m.Piece)
	}
	g.Hive.Putdown(m.Piece, m.End)

	g.TurnNumber++
	g.Hive.FlipTurn()
	g.Current = g.Current.Opponent()

	g.CurrentPlayer().PushHistory(g.Hive.State())
}

// UnmakeMove inverts MakeMove exactly: pops the current player's history
// entry before reversing the flip, then restores the turn counter, the
// side to move, and the piece to Start (or reserve, if it was a
// placement).
func (g *Game) UnmakeMove(m move.Move) {
	g.CurrentPlayer().PopHistory()

	g.TurnNumber--
	g.Hive.FlipTurn()
	g.Current = g.Current.Opponent()

	g.Hive.Pickup(m.Piece)
	if m.Start.IsNone() {
		m.Piece.Point = hexgeom.None
	} else {
		g.Hive.Putdown(m.Piece, m.Start)
	}
}

// UndoMove pops and unmakes the last move played via PlayMove.
func (g *Game) UndoMove() {
	n := len(g.MoveList)
	if n == 0 {
		return
	}
	m := g.MoveList[n-1]
	g.MoveList = g.MoveList[:n-1]
	if m.Piece == nil {
		g.UnmakePass()
		return
	}
	g.UnmakeMove(m)
}

// MakePass advances the turn without moving a piece, legal only when the
// player to move has no legal moves. Still flips the Zobrist side key and
// records the (post-flip) current player's history, since the position's
// side-to-move changes.
func (g *Game) MakePass() {
	g.TurnNumber++
	g.Hive.FlipTurn()
	g.Current = g.Current.Opponent()

	g.CurrentPlayer().PushHistory(g.Hive.State())
}

// UnmakePass inverts MakePass: pops the current player's history entry
// before reversing the flip.
func (g *Game) UnmakePass() {
	g.CurrentPlayer().PopHistory()

	g.TurnNumber--
	g.Hive.FlipTurn()
	g.Current = g.Current.Opponent()
}

// Winner returns the decisive result, Draw on threefold repetition or a
// double-surrounded queen, or None if the game continues.
func (g *Game) Winner() Result {
	surrounded := g.Hive.SurroundedQueenColors()

	white, black := false, false
	for _, c := range surrounded {
		if c == piece.White {
			white = true
		} else {
			black = true
		}
	}
	switch {
	case white && black:
		return Draw
	case white:
		return BlackWins
	case black:
		return WhiteWins
	}

	if g.CurrentPlayer().HasThreefoldRepetition() {
		return Draw
	}
	return None
}

func (g *Game) String() string {
	return fmt.Sprintf("game{turn=%v, current=%v, %v}", g.TurnNumber, g.Current, g.Hive)
}
