package eval

import (
	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/hive"
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/player"
)

const (
	entryPointScore = 1
	queenGateScore  = 10
)

// pieceValues gives the material weight used by the pin penalty; ladybug
// and mosquito are not penalized or given tropism (absent from the K set
// below), so they default to zero.
var pieceValues = map[piece.Kind]int{
	piece.Ant:         5,
	piece.Beetle:      5,
	piece.Grasshopper: 3,
	piece.Queen:       20,
	piece.Spider:      1,
}

// queenSafetyScores[k] is the bonus for a queen with k occupied neighbours.
var queenSafetyScores = [7]int{0, 10, 0, -5, -15, -30, 0}

// tropism[kind][min(dist, 7)] rewards closing in on the opposing queen.
var tropism = map[piece.Kind][8]int{
	piece.Ant:         {0, 5, 0, 0, 0, 0, 0, 0},
	piece.Spider:      {0, 5, 1, 2, 3, 0, 0, 0},
	piece.Beetle:      {5, 3, 4, 1, 0, 0, 0, 0},
	piece.Grasshopper: {0, 5, 1, 0, 0, 0, 0, 0},
}

// Evaluator computes the static position score.
type Evaluator struct{}

// Evaluate returns eval(white) - eval(black), positive favoring white.
func (Evaluator) Evaluate(b *hive.Board, white, black *player.Player) Score {
	return Score(evalPlayer(b, white, black.Queen()) - evalPlayer(b, black, white.Queen()))
}

func evalPlayer(b *hive.Board, p *player.Player, oppQueen *piece.Piece) int {
	total := 0

	if len(p.Reserve()) > 0 {
		for _, ep := range b.EntryPoints(p.Color) {
			if !adjacentToQueen(ep, p.Queen()) {
				total += entryPointScore
			}
		}
	}

	queen := p.Queen()
	if queen.IsPlayed() {
		if len(hive.LegalDestinations(b, queen)) == 0 {
			total -= pieceValues[piece.Queen]
		}

		occupied := 0
		for _, n := range queen.Point.Neighbors() {
			if b.HasPiece(n) {
				occupied++
			}
		}
		total += queenSafetyScores[occupied]

		total += controlledGateBonus(b, queen)
	}

	for _, pc := range p.Pieces() {
		if !pc.IsPlayed() || pc.Kind == piece.Queen {
			continue
		}
		if _, tracked := tropism[pc.Kind]; !tracked {
			continue
		}

		if len(hive.LegalDestinations(b, pc)) == 0 {
			total -= pieceValues[pc.Kind]
		}
		if oppQueen != nil && oppQueen.IsPlayed() {
			d := hexgeom.Distance(pc.Point, oppQueen.Point)
			if d > 7 {
				d = 7
			}
			total += tropism[pc.Kind][d]
		}
	}

	return total
}

func adjacentToQueen(p hexgeom.Point, queen *piece.Piece) bool {
	if !queen.IsPlayed() {
		return false
	}
	return hexgeom.IsAdjacent(p.Ground(), queen.Point.Ground())
}

// controlledGateBonus rewards a queen whose neighbouring gates are sealed
// from the outside: a neighbour hex that is itself in a gate, both of
// whose flanking columns (the ones a ground-slider would need empty to
// reach it) are occupied by a piece that is either the queen's own color
// or pinned in place.
func controlledGateBonus(b *hive.Board, queen *piece.Piece) int {
	ground := queen.Point.Ground()
	bonus := 0
	for _, n := range ground.Neighbors() {
		if !b.IsInGate(n) {
			continue
		}
		d, ok := hexgeom.DirectionOf(ground, n)
		if !ok {
			continue
		}
		left := ground.Neighbor(d + 1)
		right := ground.Neighbor(d - 1)
		if flankIsControlled(b, queen.Color, left) && flankIsControlled(b, queen.Color, right) {
			bonus += queenGateScore
		}
	}
	return bonus
}

func flankIsControlled(b *hive.Board, color piece.Color, p hexgeom.Point) bool {
	top, ok := b.TopAt(p)
	if !ok {
		return false
	}
	if top.Color == color {
		return true
	}
	return len(hive.LegalDestinations(b, top)) == 0
}
