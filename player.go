package halfgammon

type Player int8

const (
	PlayerNone Player = 0
	PlayerX    Player = 1
	PlayerO    Player = 2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return PlayerNone
	}
}

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "x"
	case PlayerO:
		return "o"
	default:
		return "-"
	}
}

// Bar returns the player's bar space, where bumped checkers wait to re-enter.
func (p Player) Bar() int {
	if p == PlayerO {
		return SpaceBarO
	}
	return SpaceBarX
}

// Home returns the space the player's checkers must all reach to win.
func (p Player) Home() int {
	if p == PlayerO {
		return SpaceHomeO
	}
	return SpaceHomeX
}

// ParsePlayer parses "x" or "o" in either case.
func ParsePlayer(s string) Player {
	switch s {
	case "x", "X":
		return PlayerX
	case "o", "O":
		return PlayerO
	default:
		return PlayerNone
	}
}
