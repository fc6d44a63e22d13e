package hive

import (
	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/piece"
)

// LegalDestinations returns every hex pc may legally move or be placed to,
// ignoring the controller-level queen-by-turn-four constraint. For an
// unplayed piece, this is EntryPoints(pc.Color). For a played piece, the
// set is empty if pc is not the top of its column (pinned under a
// beetle/mosquito) or if lifting it would break the hive; otherwise
// dispatch is by kind.
func LegalDestinations(b *Board, pc *piece.Piece) []hexgeom.Point {
	if !pc.IsPlayed() {
		return b.EntryPoints(pc.Color)
	}

	top, ok := b.TopAt(pc.Point.Ground())
	if !ok || top != pc {
		return nil
	}
	if b.IsBrokenWithout(pc) {
		return nil
	}

	switch pc.Kind {
	case piece.Queen:
		return queenDestinations(b, pc.Point)
	case piece.Spider:
		return spiderDestinations(b, pc.Point)
	case piece.Beetle:
		return beetleDestinations(b, pc.Point)
	case piece.Ant:
		return antDestinations(b, pc.Point)
	case piece.Grasshopper:
		return grasshopperDestinations(b, pc.Point)
	case piece.Ladybug:
		return ladybugDestinations(b, pc.Point)
	case piece.Mosquito:
		return mosquitoDestinations(b, pc.Point)
	default:
		return nil
	}
}

// slideNeighbours returns the empty neighbours of src reachable by a single
// ground slide. original (the piece's own vacated column) is treated as
// empty while the piece is mid-move, so it can itself be returned; callers
// that walk several steps exclude it through their visited set. Of the two
// neighbours src and the destination have in common, exactly one must be
// occupied (other than original): both occupied is a closed gate, neither
// occupied loses hive contact during the slide.
func slideNeighbours(b *Board, src, original hexgeom.Point) []hexgeom.Point {
	var ret []hexgeom.Point
	nbrs := src.Neighbors()
	occupied := make([]bool, hexgeom.NumDirections)
	for i, n := range nbrs {
		occupied[i] = b.HasPiece(n) && n.Ground() != original.Ground()
	}

	for i, n := range nbrs {
		if occupied[i] {
			continue
		}
		left := occupied[(i+1)%hexgeom.NumDirections]
		right := occupied[(i-1+hexgeom.NumDirections)%hexgeom.NumDirections]
		if left == right {
			// Either a closed gate (both sides occupied) or loss of hive
			// contact (neither side occupied).
			continue
		}
		ret = append(ret, n)
	}
	return ret
}

func queenDestinations(b *Board, src hexgeom.Point) []hexgeom.Point {
	return slideNeighbours(b, src, src)
}

func spiderDestinations(b *Board, src hexgeom.Point) []hexgeom.Point {
	ends := map[hexgeom.Point]bool{}
	visited := map[hexgeom.Point]bool{src.Ground(): true}
	spiderDFS(b, src, src, 3, ends, visited)

	ret := make([]hexgeom.Point, 0, len(ends))
	for p := range ends {
		ret = append(ret, p)
	}
	return ret
}

func spiderDFS(b *Board, cur, original hexgeom.Point, depth int, ends, visited map[hexgeom.Point]bool) {
	depth--
	for _, n := range slideNeighboursExcluding(b, cur, original, visited) {
		if depth == 0 {
			ends[n] = true
			continue
		}
		visited[n.Ground()] = true
		spiderDFS(b, n, original, depth, ends, visited)
		delete(visited, n.Ground())
	}
}

func slideNeighboursExcluding(b *Board, src, original hexgeom.Point, invalid map[hexgeom.Point]bool) []hexgeom.Point {
	var ret []hexgeom.Point
	for _, n := range slideNeighbours(b, src, original) {
		if !invalid[n.Ground()] {
			ret = append(ret, n)
		}
	}
	return ret
}

func antDestinations(b *Board, src hexgeom.Point) []hexgeom.Point {
	visited := map[hexgeom.Point]bool{src.Ground(): true}
	frontier := []hexgeom.Point{src}
	for len(frontier) > 0 {
		var next []hexgeom.Point
		for _, p := range frontier {
			for _, n := range slideNeighboursExcluding(b, p, src, visited) {
				visited[n.Ground()] = true
				next = append(next, n)
			}
		}
		frontier = next
	}

	ret := make([]hexgeom.Point, 0, len(visited)-1)
	for p := range visited {
		if p != src.Ground() {
			ret = append(ret, p)
		}
	}
	return ret
}

func grasshopperDestinations(b *Board, src hexgeom.Point) []hexgeom.Point {
	var ret []hexgeom.Point
	ground := src.Ground()
	for d := hexgeom.Direction(0); d < hexgeom.NumDirections; d++ {
		if !b.HasPiece(ground.Neighbor(d)) {
			continue
		}
		p := ground.Neighbor(d)
		for b.HasPiece(p) {
			p = p.Neighbor(d)
		}
		ret = append(ret, p)
	}
	return ret
}

// CanClimb implements the beetle/mosquito/ladybug vertical gate: climbing
// from elevation z1 onto a surface at elevation z2, across the edge between
// the two ground points, is permitted iff the lower of the two flanking
// column heights does not exceed the higher of z1, z2.
func (b *Board) CanClimb(from, to hexgeom.Point, z1, z2 int) bool {
	d, ok := hexgeom.DirectionOf(from.Ground(), to.Ground())
	if !ok {
		return false
	}
	left := b.Height(from.Ground().Neighbor(d + 1))
	right := b.Height(from.Ground().Neighbor(d - 1))
	lo := left
	if right < lo {
		lo = right
	}
	hi := z1
	if z2 > hi {
		hi = z2
	}
	return lo <= hi
}

func beetleDestinations(b *Board, src hexgeom.Point) []hexgeom.Point {
	var ret []hexgeom.Point
	ground := src.Ground()
	z1 := src.Z

	groundSlides := map[hexgeom.Point]bool{}
	if z1 == 0 {
		for _, n := range slideNeighbours(b, ground, ground) {
			groundSlides[n.Ground()] = true
		}
	}

	for _, n := range ground.Neighbors() {
		z2 := b.Height(n)
		if z1 == 0 && z2 == 0 {
			if groundSlides[n.Ground()] {
				ret = append(ret, n)
			}
			continue
		}
		if b.CanClimb(ground, n, z1, z2) {
			ret = append(ret, n)
		}
	}
	return ret
}

func ladybugDestinations(b *Board, src hexgeom.Point) []hexgeom.Point {
	ground := src.Ground()
	seen := map[hexgeom.Point]bool{}

	for _, n1 := range ground.Neighbors() {
		h1 := b.Height(n1)
		if h1 == 0 || !b.CanClimb(ground, n1, 0, h1) {
			continue
		}
		for _, n2 := range n1.Neighbors() {
			if n2.Ground() == ground {
				continue
			}
			h2 := b.Height(n2)
			if h2 == 0 || !b.CanClimb(n1, n2, h1, h2) {
				continue
			}
			for _, n3 := range n2.Neighbors() {
				if b.HasPiece(n3) || n3.Ground() == ground {
					continue
				}
				if b.CanClimb(n2, n3, h2, 0) {
					seen[n3.Ground()] = true
				}
			}
		}
	}

	ret := make([]hexgeom.Point, 0, len(seen))
	for p := range seen {
		ret = append(ret, p)
	}
	return ret
}

func mosquitoDestinations(b *Board, src hexgeom.Point) []hexgeom.Point {
	if src.Z > 0 {
		return beetleDestinations(b, src)
	}

	seen := map[hexgeom.Point]bool{}
	var ret []hexgeom.Point
	for _, n := range src.Ground().Neighbors() {
		top, ok := b.TopAt(n)
		if !ok || top.Kind == piece.Mosquito {
			continue
		}

		var dests []hexgeom.Point
		switch top.Kind {
		case piece.Queen:
			dests = queenDestinations(b, src)
		case piece.Spider:
			dests = spiderDestinations(b, src)
		case piece.Beetle:
			dests = beetleDestinations(b, src)
		case piece.Ant:
			dests = antDestinations(b, src)
		case piece.Grasshopper:
			dests = grasshopperDestinations(b, src)
		case piece.Ladybug:
			dests = ladybugDestinations(b, src)
		}
		for _, d := range dests {
			if !seen[d.Ground()] {
				seen[d.Ground()] = true
				ret = append(ret, d)
			}
		}
	}
	return ret
}
