package halfgammon

// Each player has their own array of checker counts indexed by space.
// X travels from its bar at 0 toward its home at 17. O travels the other way,
// from its bar at 17 toward its home at 0.
const (
	SpaceBarX  = 0
	SpaceHomeX = 17
	SpaceBarO  = 17
	SpaceHomeO = 0
)

const (
	FirstSpace = 1
	LastSpace  = 16
)

// ValidSpaces is the number of spaces checkers may rest on between the bars and homes.
const ValidSpaces = LastSpace - FirstSpace + 1

// BoardSpaces is the length of each player's array, including the bar and home slots.
const BoardSpaces = ValidSpaces + 2

// startingLayout holds how many checkers X starts with on each space. O starts
// with the mirrored layout. Both players start with 8 checkers.
var startingLayout = [BoardSpaces]int{
	1:  2,
	7:  3,
	12: 3,
}

// StartingLayout returns a copy of X's starting checker counts, indexed by
// space. O's layout is found at MirrorSpace of each space.
func StartingLayout() [BoardSpaces]int {
	return startingLayout
}

// Board is the complete state of a game.
type Board struct {
	x     [BoardSpaces]int
	o     [BoardSpaces]int
	xTurn bool
}

// NewBoard returns a board with both players' checkers in their starting
// positions. X moves first.
func NewBoard() *Board {
	b := &Board{
		xTurn: true,
	}
	for space, checkers := range startingLayout {
		if checkers == 0 {
			continue
		}
		b.x[space] = checkers
		b.o[MirrorSpace(space)] = checkers
	}
	return b
}

// MirrorSpace returns the space at the same distance from the other end of the board.
func MirrorSpace(space int) int {
	return BoardSpaces - 1 - space
}

// ValidSpace returns whether the space is on the track, excluding bars and homes.
func ValidSpace(space int) bool {
	return space >= FirstSpace && space <= LastSpace
}

// Turn returns the player whose turn it is.
func (b *Board) Turn() Player {
	if b.xTurn {
		return PlayerX
	}
	return PlayerO
}

// ChangePlayer passes the turn to the other player.
func (b *Board) ChangePlayer() {
	b.xTurn = !b.xTurn
}

// Checkers returns the number of checkers the player has on the space.
func (b *Board) Checkers(player Player, space int) int {
	if space < 0 || space >= BoardSpaces {
		return 0
	}
	if player == PlayerX {
		return b.x[space]
	}
	return b.o[space]
}

// HasBumpedPiece returns whether the player to move has a checker on their bar.
func (b *Board) HasBumpedPiece() bool {
	s := b.turnSide()
	return s.own[s.bar] > 0
}

// IsXWin returns whether every X checker has reached home.
func (b *Board) IsXWin() bool {
	return allHome(&b.x, SpaceHomeX)
}

// IsOWin returns whether every O checker has reached home.
func (b *Board) IsOWin() bool {
	return allHome(&b.o, SpaceHomeO)
}

// GameOver returns whether either player has won.
func (b *Board) GameOver() bool {
	return b.IsXWin() || b.IsOWin()
}

// Winner returns the player who has won, or PlayerNone.
func (b *Board) Winner() Player {
	switch {
	case b.IsXWin():
		return PlayerX
	case b.IsOWin():
		return PlayerO
	default:
		return PlayerNone
	}
}

func allHome(checkers *[BoardSpaces]int, home int) bool {
	total := countCheckers(checkers)
	return total > 0 && checkers[home] == total
}

func countCheckers(checkers *[BoardSpaces]int) int {
	var total int
	for _, c := range checkers {
		total += c
	}
	return total
}
