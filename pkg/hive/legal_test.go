package hive_test

import (
	"testing"

	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/hive"
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPiece(color piece.Color, kind piece.Kind) *piece.Piece {
	return &piece.Piece{Color: color, Kind: kind, Point: hexgeom.None}
}

func containsGround(pts []hexgeom.Point, p hexgeom.Point) bool {
	for _, q := range pts {
		if q.Ground() == p.Ground() {
			return true
		}
	}
	return false
}

func TestQueenSlideRespectsGateAndContact(t *testing.T) {
	b := hive.New(zobrist.New(1))
	q := newPiece(piece.White, piece.Queen)
	other := newPiece(piece.Black, piece.Ant)

	b.Putdown(q, hexgeom.Origin)
	b.Putdown(other, hexgeom.Origin.Neighbor(hexgeom.E))

	dests := hive.LegalDestinations(b, q)

	// Only the two hexes flanking the single occupied neighbour keep the
	// queen in hive contact while satisfying the slide gate; SW/W/NW lose
	// contact entirely and are excluded.
	assert.Len(t, dests, 2)
	assert.True(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.NE)))
	assert.True(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.SE)))
	assert.False(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.W)))
}

func TestQueenUnplayedDestinationsAreEntryPoints(t *testing.T) {
	b := hive.New(zobrist.New(1))
	q := newPiece(piece.White, piece.Queen)

	dests := hive.LegalDestinations(b, q)
	assert.Equal(t, []hexgeom.Point{hexgeom.Origin}, dests)
}

func TestSpiderExactlyThreeSlides(t *testing.T) {
	b := hive.New(zobrist.New(1))
	spider := newPiece(piece.White, piece.Spider)
	anchor := newPiece(piece.Black, piece.Ant)

	b.Putdown(anchor, hexgeom.Origin)
	b.Putdown(spider, hexgeom.Origin.Neighbor(hexgeom.E))

	dests := hive.LegalDestinations(b, spider)
	require.NotEmpty(t, dests)

	// Every destination must be 3 slides away around the lone anchor piece,
	// never adjacent to the anchor in a way a 1- or 2-step path would also
	// reach directly (the spider's own starting hex and its immediate
	// clockwise/counter-clockwise neighbour around the ring are excluded).
	start := hexgeom.Origin.Neighbor(hexgeom.E)
	for _, d := range dests {
		assert.NotEqual(t, start.Ground(), d.Ground())
	}
}

func TestSpiderDoesNotRevisitIntermediateNode(t *testing.T) {
	b := hive.New(zobrist.New(1))
	spider := newPiece(piece.White, piece.Spider)
	anchor := newPiece(piece.Black, piece.Ant)

	b.Putdown(anchor, hexgeom.Origin)
	b.Putdown(spider, hexgeom.Origin.Neighbor(hexgeom.E))

	// Around a single anchor piece, a spider ring-walks exactly 3 of the
	// remaining 5 ring hexes without revisiting any; reversing direction
	// back onto its own start or immediate neighbour is never a valid
	// 3-distinct-step destination.
	dests := hive.LegalDestinations(b, spider)
	seen := map[hexgeom.Point]bool{}
	for _, d := range dests {
		g := d.Ground()
		assert.False(t, seen[g], "duplicate destination %v", g)
		seen[g] = true
	}
	assert.False(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.E)))
	assert.False(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.NE)))
	assert.False(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.SE)))
}

func TestAntReachesAroundSingleAnchor(t *testing.T) {
	b := hive.New(zobrist.New(1))
	anchor := newPiece(piece.White, piece.Queen)
	ant := newPiece(piece.White, piece.Ant)

	b.Putdown(anchor, hexgeom.Origin)
	b.Putdown(ant, hexgeom.Origin.Neighbor(hexgeom.E))

	dests := hive.LegalDestinations(b, ant)

	// The ant can walk the full ring around the lone anchor, landing on
	// every one of the anchor's other 5 neighbours, but never back on its
	// own starting hex.
	assert.Len(t, dests, 5)
	assert.False(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.E)))
}

func TestGrasshopperJumpsOverOccupiedLineToFirstEmpty(t *testing.T) {
	b := hive.New(zobrist.New(1))
	hopper := newPiece(piece.White, piece.Grasshopper)
	mid := newPiece(piece.Black, piece.Ant)
	far := newPiece(piece.Black, piece.Ant)

	b.Putdown(hopper, hexgeom.Origin)
	b.Putdown(mid, hexgeom.Origin.Neighbor(hexgeom.E))
	b.Putdown(far, hexgeom.Origin.Neighbor(hexgeom.E).Neighbor(hexgeom.E))

	dests := hive.LegalDestinations(b, hopper)
	landing := hexgeom.Origin.Neighbor(hexgeom.E).Neighbor(hexgeom.E).Neighbor(hexgeom.E)

	assert.Len(t, dests, 1)
	assert.Equal(t, landing.Ground(), dests[0].Ground())
}

func TestGrasshopperOmitsEmptyAdjacentDirections(t *testing.T) {
	b := hive.New(zobrist.New(1))
	hopper := newPiece(piece.White, piece.Grasshopper)
	mid := newPiece(piece.Black, piece.Ant)

	b.Putdown(hopper, hexgeom.Origin)
	b.Putdown(mid, hexgeom.Origin.Neighbor(hexgeom.E))

	// Only the E direction has an occupied immediate neighbour; every other
	// direction is omitted, so exactly one destination is reported overall
	// (grasshopper monotonicity: at most one destination per direction).
	dests := hive.LegalDestinations(b, hopper)
	assert.Len(t, dests, 1)
}

func TestBeetleClimbBlockedByTallFlank(t *testing.T) {
	b := hive.New(zobrist.New(1))
	host := newPiece(piece.White, piece.Ant)
	beetle := newPiece(piece.White, piece.Beetle)
	flankA := newPiece(piece.Black, piece.Ant)
	flankB := newPiece(piece.Black, piece.Beetle)
	flankC := newPiece(piece.Black, piece.Ant)
	flankD := newPiece(piece.Black, piece.Beetle)

	b.Putdown(host, hexgeom.Origin)
	b.Putdown(beetle, hexgeom.Origin) // beetle now on top, z=1

	// Build height-2 flanks on both hexes common to Origin and its E
	// neighbour (NE and SE). The lower flank (2) then exceeds the higher of
	// z1=1 and z2=0, which closes the gate for the beetle.
	flankPoint := hexgeom.Origin.Neighbor(hexgeom.NE)
	b.Putdown(flankA, flankPoint)
	b.Putdown(flankB, flankPoint)
	require.Equal(t, 2, b.Height(flankPoint))

	otherFlank := hexgeom.Origin.Neighbor(hexgeom.SE)
	b.Putdown(flankC, otherFlank)
	b.Putdown(flankD, otherFlank)
	require.Equal(t, 2, b.Height(otherFlank))

	dests := hive.LegalDestinations(b, beetle)
	assert.False(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.E)))
}

func TestBeetleClimbAllowedWithoutTallFlank(t *testing.T) {
	b := hive.New(zobrist.New(1))
	host := newPiece(piece.White, piece.Ant)
	beetle := newPiece(piece.White, piece.Beetle)

	b.Putdown(host, hexgeom.Origin)
	b.Putdown(beetle, hexgeom.Origin)

	dests := hive.LegalDestinations(b, beetle)
	assert.True(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.E)))
}

func TestBeetleGroundSlideRequiresHiveContact(t *testing.T) {
	b := hive.New(zobrist.New(1))
	beetle := newPiece(piece.White, piece.Beetle)
	other := newPiece(piece.Black, piece.Ant)

	b.Putdown(beetle, hexgeom.Origin)
	b.Putdown(other, hexgeom.Origin.Neighbor(hexgeom.NE))

	// The gate between Origin and SE (common hexes E/SW) is open, but
	// sliding there loses all hive contact: SE is hex-distance 2 from the
	// only other piece. A ground beetle must honor the same
	// maintain-contact rule as every other ground-slider, not merely the
	// shared-edge gate.
	dests := hive.LegalDestinations(b, beetle)
	assert.False(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.SE)))

	// The two hexes flanking the occupied neighbour remain legal: they
	// satisfy both the gate and hive contact.
	assert.True(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.E)))
	assert.True(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.NW)))
}

func TestPinnedUnderBeetleHasNoDestinationsButBeetleCanMove(t *testing.T) {
	b := hive.New(zobrist.New(1))
	host := newPiece(piece.White, piece.Ant)
	beetle := newPiece(piece.White, piece.Beetle)
	other := newPiece(piece.Black, piece.Queen)

	b.Putdown(host, hexgeom.Origin)
	b.Putdown(beetle, hexgeom.Origin)
	b.Putdown(other, hexgeom.Origin.Neighbor(hexgeom.E))

	assert.Empty(t, hive.LegalDestinations(b, host))
	assert.NotEmpty(t, hive.LegalDestinations(b, beetle))
}

func TestLadybugTwoUpOneDown(t *testing.T) {
	b := hive.New(zobrist.New(1))
	ladybug := newPiece(piece.White, piece.Ladybug)
	step1 := newPiece(piece.Black, piece.Ant)
	step2 := newPiece(piece.Black, piece.Ant)

	n1 := hexgeom.Origin.Neighbor(hexgeom.E)
	n2 := n1.Neighbor(hexgeom.E)
	n3 := n2.Neighbor(hexgeom.E)

	b.Putdown(ladybug, hexgeom.Origin)
	b.Putdown(step1, n1)
	b.Putdown(step2, n2)

	dests := hive.LegalDestinations(b, ladybug)
	assert.True(t, containsGround(dests, n3))
	// The ladybug never ends its move on top of the hive or back where it started.
	assert.False(t, containsGround(dests, hexgeom.Origin))
	assert.False(t, containsGround(dests, n1))
	assert.False(t, containsGround(dests, n2))
}

func TestMosquitoInheritsAdjacentQueenSlide(t *testing.T) {
	b := hive.New(zobrist.New(1))
	mosquito := newPiece(piece.White, piece.Mosquito)
	queen := newPiece(piece.Black, piece.Queen)

	b.Putdown(queen, hexgeom.Origin)
	b.Putdown(mosquito, hexgeom.Origin.Neighbor(hexgeom.E))

	// A mosquito next to a queen and nothing else, from the same point,
	// must produce the same destination set a queen would (a single
	// sliding step maintaining hive contact) -- not an ant's full walk.
	mosquitoDests := hive.LegalDestinations(b, mosquito)
	require.NotEmpty(t, mosquitoDests)
	for _, d := range mosquitoDests {
		assert.True(t, hexgeom.IsAdjacent(mosquito.Point.Ground(), d.Ground()))
	}
}

func TestMosquitoOnTopBehavesAsBeetle(t *testing.T) {
	b := hive.New(zobrist.New(1))
	host := newPiece(piece.White, piece.Ant)
	mosquito := newPiece(piece.White, piece.Mosquito)

	b.Putdown(host, hexgeom.Origin)
	b.Putdown(mosquito, hexgeom.Origin)
	require.Equal(t, 1, mosquito.Point.Z)

	dests := hive.LegalDestinations(b, mosquito)
	assert.True(t, containsGround(dests, hexgeom.Origin.Neighbor(hexgeom.E)))
}

func TestMosquitoDoesNotInheritFromAnotherMosquito(t *testing.T) {
	b := hive.New(zobrist.New(1))
	m1 := newPiece(piece.White, piece.Mosquito)
	m2 := newPiece(piece.Black, piece.Mosquito)

	b.Putdown(m2, hexgeom.Origin)
	b.Putdown(m1, hexgeom.Origin.Neighbor(hexgeom.E))

	// m1's only neighbour is another mosquito, which contributes nothing;
	// with no other kind to inherit from, m1 has no destinations (lifting
	// it leaves a single piece, so the hive itself does not break).
	assert.Empty(t, hive.LegalDestinations(b, m1))
}
