package book_test

import (
	"testing"

	"github.com/herohde/hive/pkg/book"
	"github.com/herohde/hive/pkg/game"
	"github.com/herohde/hive/pkg/hexgeom"
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpeningBookFirstTwoMoves(t *testing.T) {
	g := game.New(zobrist.New(1), nil)
	b := book.Default()

	m1, ok := b.Find(g)
	require.True(t, ok)
	assert.Equal(t, piece.Grasshopper, m1.Piece.Kind)
	assert.Equal(t, hexgeom.Origin, m1.End.Ground())
	require.NoError(t, g.PlayMove(m1))

	m2, ok := b.Find(g)
	require.True(t, ok)
	assert.Equal(t, piece.Grasshopper, m2.Piece.Kind)
	assert.Equal(t, hexgeom.Origin.Neighbor(hexgeom.W), m2.End.Ground())
	require.NoError(t, g.PlayMove(m2))

	_, ok = b.Find(g)
	assert.False(t, ok)
}
