package halfgammon

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const (
	VerticalBar rune = '│' // │
)

// boardRows is the number of checkers drawn on a space before the count is
// printed instead.
const boardRows = 5

const halfSpaces = ValidSpaces / 2

// spaceOrder returns the spaces from left to right as the player sees them.
func spaceOrder(player Player) []int {
	spaces := make([]int, 0, ValidSpaces)
	if player == PlayerO {
		for space := LastSpace; space >= FirstSpace; space-- {
			spaces = append(spaces, space)
		}
		return spaces
	}
	for space := FirstSpace; space <= LastSpace; space++ {
		spaces = append(spaces, space)
	}
	return spaces
}

func spaceLabel(space int) []byte {
	label := strconv.Itoa(space)
	if len(label) == 1 {
		label = "-" + label
	}
	return []byte("-" + label)
}

// renderSpace returns the three characters drawn for the space on the given
// row, counting rows from 1.
func (b *Board) renderSpace(space int, row int) []byte {
	var symbol string
	var count int
	switch {
	case b.x[space] > 0:
		symbol, count = PlayerX.String(), b.x[space]
	case b.o[space] > 0:
		symbol, count = PlayerO.String(), b.o[space]
	default:
		return []byte("   ")
	}

	if count > boardRows && row == boardRows {
		return []byte(fmt.Sprintf("%2d ", count))
	} else if row > count {
		return []byte("   ")
	}
	return []byte(" " + symbol + " ")
}

// Render draws the board from the perspective of the player.
func (b *Board) Render(player Player) []byte {
	var t bytes.Buffer

	spaces := spaceOrder(player)

	t.WriteByte('+')
	for i, space := range spaces {
		t.Write(spaceLabel(space))
		if i == halfSpaces-1 {
			t.WriteString("-+")
		}
	}
	t.WriteString("-+\n")

	for row := 1; row <= boardRows; row++ {
		t.WriteRune(VerticalBar)
		for i, space := range spaces {
			t.Write(b.renderSpace(space, row))
			if i == halfSpaces-1 {
				t.WriteByte(' ')
				t.WriteRune(VerticalBar)
			}
		}
		t.WriteByte(' ')
		t.WriteRune(VerticalBar)

		switch row {
		case 1:
			t.WriteString(fmt.Sprintf("  x bar %d  home %d", b.x[SpaceBarX], b.x[SpaceHomeX]))
		case 2:
			t.WriteString(fmt.Sprintf("  o bar %d  home %d", b.o[SpaceBarO], b.o[SpaceHomeO]))
		case 4:
			if winner := b.Winner(); winner != PlayerNone {
				t.WriteString(fmt.Sprintf("  %s wins", winner))
			} else {
				t.WriteString(fmt.Sprintf("  %s to move", b.Turn()))
			}
		}
		t.WriteByte('\n')
	}

	t.WriteByte('+')
	for i := range spaces {
		t.WriteString("---")
		if i == halfSpaces-1 {
			t.WriteString("-+")
		}
	}
	t.WriteString("-+\n")
	return t.Bytes()
}

// DisplayBoard writes the board as seen by the player to move.
func (b *Board) DisplayBoard(w io.Writer) error {
	_, err := w.Write(b.Render(b.Turn()))
	return err
}

// DisplayRoll writes the rolled value.
func DisplayRoll(w io.Writer, roll int) error {
	_, err := fmt.Fprintf(w, "Rolled %d\n", roll)
	return err
}
