package notation_test

import (
	"testing"
	"time"

	"github.com/herohde/hive/pkg/notation"
	"github.com/herohde/hive/pkg/piece"
	"github.com/herohde/hive/pkg/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpansions(t *testing.T) {
	kinds, err := notation.ParseExpansions("LM")
	require.NoError(t, err)
	assert.ElementsMatch(t, []piece.Kind{piece.Ladybug, piece.Mosquito}, kinds)

	kinds, err = notation.ParseExpansions("")
	require.NoError(t, err)
	assert.Empty(t, kinds)

	_, err = notation.ParseExpansions("X")
	assert.Error(t, err)
}

func TestParseTimeControl(t *testing.T) {
	budget, err := notation.ParseTimeControl("600000,1000,2000")
	require.NoError(t, err)
	assert.Equal(t, 600*time.Second, budget.Total)
	assert.Equal(t, time.Second, budget.WhiteUsed)
	assert.Equal(t, 2*time.Second, budget.BlackUsed)

	_, err = notation.ParseTimeControl("1,2")
	assert.Error(t, err)

	budget, err = notation.ParseTimeControl("")
	require.NoError(t, err)
	assert.Zero(t, budget.Total)
}

func TestParseMoveListReplaysSeedScenario(t *testing.T) {
	g, err := notation.ParseMoveList(zobrist.New(1), nil, "1. wG1, 2. bG1 -wG1")
	require.NoError(t, err)

	assert.Equal(t, 3, g.TurnNumber)
	assert.Equal(t, piece.White, g.Current)
	assert.Equal(t, 2, g.Hive.NumPieces())
}

func TestParseMoveListEmptyIsStartingPosition(t *testing.T) {
	g, err := notation.ParseMoveList(zobrist.New(1), nil, "")
	require.NoError(t, err)

	assert.Equal(t, 1, g.TurnNumber)
	assert.Equal(t, 0, g.Hive.NumPieces())
}

func TestParseMoveListRejectsIllegalMove(t *testing.T) {
	_, err := notation.ParseMoveList(zobrist.New(1), nil, "1. wQ, 2. bQ, 3. wQ")
	assert.Error(t, err)
}
