package game

import "github.com/herohde/hive/pkg/piece"

// Result is the outcome of a game, as of the current position.
type Result int

const (
	None Result = iota
	WhiteWins
	BlackWins
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WinnerColor returns the winning color and true, or (_, false) if the
// result is not a decisive win.
func (r Result) WinnerColor() (piece.Color, bool) {
	switch r {
	case WhiteWins:
		return piece.White, true
	case BlackWins:
		return piece.Black, true
	default:
		return piece.ZeroColor, false
	}
}
