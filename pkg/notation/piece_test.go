package notation_test

import (
	"testing"

	"github.com/herohde/hive/pkg/notation"
	"github.com/herohde/hive/pkg/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePieceID(t *testing.T) {
	tests := []struct {
		token string
		want  piece.ID
	}{
		{"wQ", piece.ID{Color: piece.White, Kind: piece.Queen}},
		{"bA2", piece.ID{Color: piece.Black, Kind: piece.Ant, Number: 2}},
		{"G1", piece.ID{Color: piece.White, Kind: piece.Grasshopper, Number: 1}},
	}
	for _, tc := range tests {
		got, err := notation.ParsePieceID(tc.token, piece.White)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParsePieceIDRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "wZ", "wQ9", "wQ1x"} {
		_, err := notation.ParsePieceID(token, piece.White)
		assert.Error(t, err, token)
	}
}
