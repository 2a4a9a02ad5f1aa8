package halfgammon

// side describes the board from the point of view of one player. X and O move
// by the same rules in opposite directions, so every move goes through a side.
type side struct {
	dir    int
	bar    int
	home   int
	own    *[BoardSpaces]int
	opp    *[BoardSpaces]int
	oppBar int
}

func (b *Board) turnSide() side {
	if b.xTurn {
		return side{
			dir:    1,
			bar:    SpaceBarX,
			home:   SpaceHomeX,
			own:    &b.x,
			opp:    &b.o,
			oppBar: SpaceBarO,
		}
	}
	return side{
		dir:    -1,
		bar:    SpaceBarO,
		home:   SpaceHomeO,
		own:    &b.o,
		opp:    &b.x,
		oppBar: SpaceBarX,
	}
}

// destination returns where a checker leaving from lands after moving size
// spaces. Checkers that overshoot the last space go home. The overshoot is
// checked before adding so that any size is safe.
func (s side) destination(from int, size int) int {
	if (s.dir > 0 && size > LastSpace-from) || (s.dir < 0 && size >= from) {
		return s.home
	}
	return from + s.dir*size
}

// landable returns whether a checker may finish a move on the space.
func (s side) landable(to int) bool {
	if to == s.home {
		return true
	} else if !ValidSpace(to) {
		return false
	}
	return s.opp[to] < 2
}

func (s side) legal(from int, size int) bool {
	if size < 1 || from < 0 || from >= BoardSpaces || from == s.home {
		return false
	} else if from != s.bar && !ValidSpace(from) {
		return false
	} else if s.own[from] == 0 {
		return false
	} else if s.own[s.bar] > 0 && from != s.bar {
		return false // Bumped checkers re-enter first.
	}
	return s.landable(s.destination(from, size))
}

// apply moves one checker without checking legality. A single opponent
// checker on the destination is sent to the opponent's bar.
func (s side) apply(from int, size int) (to int, bumped bool) {
	to = s.destination(from, size)
	s.own[from]--
	if to != s.home && s.opp[to] == 1 {
		s.opp[to] = 0
		s.opp[s.oppBar]++
		bumped = true
	}
	s.own[to]++
	return to, bumped
}

// IsValidDestination returns whether the player to move may land on the space.
// Valid spaces held by two or more opposing checkers are blocked. The mover's
// home is always valid, every other bar or home slot never is.
func (b *Board) IsValidDestination(space int) bool {
	return b.turnSide().landable(space)
}

// IsMovePossible returns whether the player to move has any legal move of the
// given size.
func (b *Board) IsMovePossible(moveSize int) bool {
	s := b.turnSide()
	if s.own[s.bar] > 0 {
		return s.legal(s.bar, moveSize)
	}
	for space := FirstSpace; space <= LastSpace; space++ {
		if s.legal(space, moveSize) {
			return true
		}
	}
	return false
}

// PerformMove moves one of the current player's checkers from movePosition by
// moveSize spaces. Passing the player's bar as movePosition re-enters a bumped
// checker. The board is left unchanged when the move is illegal.
func (b *Board) PerformMove(movePosition int, moveSize int) bool {
	_, ok := b.Move(movePosition, moveSize)
	return ok
}

// MoveBumpedPiece re-enters a checker from the current player's bar.
func (b *Board) MoveBumpedPiece(moveSize int) bool {
	s := b.turnSide()
	_, ok := b.Move(s.bar, moveSize)
	return ok
}

// Move is PerformMove, additionally reporting where the checker landed and
// whether an opposing checker was bumped.
func (b *Board) Move(movePosition int, moveSize int) (MoveResult, bool) {
	s := b.turnSide()
	if !s.legal(movePosition, moveSize) {
		return MoveResult{}, false
	}
	to, bumped := s.apply(movePosition, moveSize)
	return MoveResult{
		Player: b.Turn(),
		From:   movePosition,
		To:     to,
		Bumped: bumped,
	}, true
}

// LegalMoves returns every space the player to move may move a checker from
// with the given roll.
func (b *Board) LegalMoves(moveSize int) []int {
	s := b.turnSide()
	if s.own[s.bar] > 0 {
		if s.legal(s.bar, moveSize) {
			return []int{s.bar}
		}
		return nil
	}
	var spaces []int
	for space := FirstSpace; space <= LastSpace; space++ {
		if s.legal(space, moveSize) {
			spaces = append(spaces, space)
		}
	}
	return spaces
}

// MoveResult describes a move which was played.
type MoveResult struct {
	Player Player
	From   int
	To     int
	Bumped bool
}
