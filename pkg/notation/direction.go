package notation

import "github.com/herohde/hive/pkg/hexgeom"

// marker is one of the three direction glyphs '/' '-' '\\'. Its meaning
// depends on which side of the anchor piece it is written: prefix
// ("-wG1") reads from the left-side table, suffix ("wG1-") from the
// right-side table. No marker at all means covering (stacking on top).
const markers = "/-\\"

var leftSide = map[rune]hexgeom.Direction{
	'/': hexgeom.SW,
	'-': hexgeom.W,
	'\\': hexgeom.NW,
}

var rightSide = map[rune]hexgeom.Direction{
	'/': hexgeom.NE,
	'-': hexgeom.E,
	'\\': hexgeom.SE,
}

var leftSideInverse = invert(leftSide)
var rightSideInverse = invert(rightSide)

func invert(m map[rune]hexgeom.Direction) map[hexgeom.Direction]rune {
	ret := make(map[hexgeom.Direction]rune, len(m))
	for r, d := range m {
		ret[d] = r
	}
	return ret
}

func isMarker(r rune) bool {
	for _, m := range markers {
		if m == r {
			return true
		}
	}
	return false
}

// anchorSide distinguishes where the marker sat relative to the anchor
// token, since the same glyph means a different direction on each side.
type anchorSide int

const (
	noMarker anchorSide = iota
	prefixMarker
	suffixMarker
)

// splitAnchor separates a leading or trailing direction marker from an
// anchor token, returning the bare piece id text, the marker rune (zero if
// none) and which side it was attached to.
func splitAnchor(token string) (id string, marker rune, side anchorSide) {
	runes := []rune(token)
	if len(runes) == 0 {
		return token, 0, noMarker
	}
	if isMarker(runes[0]) {
		return string(runes[1:]), runes[0], prefixMarker
	}
	if isMarker(runes[len(runes)-1]) {
		return string(runes[:len(runes)-1]), runes[len(runes)-1], suffixMarker
	}
	return token, 0, noMarker
}
