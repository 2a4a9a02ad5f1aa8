package halfgammon

import (
	"bytes"
	"fmt"
	"strconv"
)

// State is a copy of everything needed to restore a board.
type State struct {
	X     [BoardSpaces]int `json:"x"`
	O     [BoardSpaces]int `json:"o"`
	XTurn bool             `json:"xTurn"`
}

// GetState copies the board into the provided arrays.
func (b *Board) GetState(x *[BoardSpaces]int, o *[BoardSpaces]int, xTurn *bool) {
	*x = b.x
	*o = b.o
	*xTurn = b.xTurn
}

// RestoreState overwrites the board with the provided arrays. The state is not
// validated: callers must preserve each player's checker total themselves.
func (b *Board) RestoreState(x *[BoardSpaces]int, o *[BoardSpaces]int, xTurn bool) {
	b.x = *x
	b.o = *o
	b.xTurn = xTurn
}

func (b *Board) State() State {
	var s State
	b.GetState(&s.X, &s.O, &s.XTurn)
	return s
}

func (b *Board) Restore(s State) {
	b.RestoreState(&s.X, &s.O, s.XTurn)
}

// Checkers returns the total number of checkers the player has anywhere on the board.
func (s State) Checkers(player Player) int {
	if player == PlayerX {
		return countCheckers(&s.X)
	}
	return countCheckers(&s.O)
}

// String formats the state as x:<counts>;o:<counts>;turn:<player>.
func (s State) String() string {
	var buf bytes.Buffer
	writeCounts := func(prefix string, counts *[BoardSpaces]int) {
		buf.WriteString(prefix)
		for i, c := range counts {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.Itoa(c))
		}
		buf.WriteByte(';')
	}
	writeCounts("x:", &s.X)
	writeCounts("o:", &s.O)
	turn := PlayerO
	if s.XTurn {
		turn = PlayerX
	}
	buf.WriteString("turn:" + turn.String())
	return buf.String()
}

// ParseState parses a state formatted by State.String. Checker totals are not
// checked.
func ParseState(text string) (State, error) {
	var s State
	fields := bytes.Split(bytes.TrimSpace([]byte(text)), []byte(";"))
	if len(fields) != 3 {
		return s, fmt.Errorf("invalid state %q: expected 3 fields, got %d", text, len(fields))
	}

	parseCounts := func(field []byte, prefix string, counts *[BoardSpaces]int) error {
		if !bytes.HasPrefix(field, []byte(prefix)) {
			return fmt.Errorf("invalid state %q: expected field %q", text, prefix)
		}
		values := bytes.Split(field[len(prefix):], []byte(","))
		if len(values) != BoardSpaces {
			return fmt.Errorf("invalid state %q: field %q has %d spaces, expected %d", text, prefix, len(values), BoardSpaces)
		}
		for i, v := range values {
			c, err := strconv.Atoi(string(v))
			if err != nil {
				return fmt.Errorf("invalid state %q: space %d: %w", text, i, err)
			} else if c < 0 {
				return fmt.Errorf("invalid state %q: space %d has negative count %d", text, i, c)
			}
			counts[i] = c
		}
		return nil
	}
	if err := parseCounts(fields[0], "x:", &s.X); err != nil {
		return State{}, err
	}
	if err := parseCounts(fields[1], "o:", &s.O); err != nil {
		return State{}, err
	}

	turnField := fields[2]
	if !bytes.HasPrefix(turnField, []byte("turn:")) {
		return State{}, fmt.Errorf("invalid state %q: expected field \"turn:\"", text)
	}
	switch ParsePlayer(string(turnField[len("turn:"):])) {
	case PlayerX:
		s.XTurn = true
	case PlayerO:
		s.XTurn = false
	default:
		return State{}, fmt.Errorf("invalid state %q: unknown player %q", text, turnField[len("turn:"):])
	}
	return s, nil
}
