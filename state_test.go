package halfgammon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetStateRestoreState(t *testing.T) {
	b := NewBoard()
	require.True(t, b.PerformMove(1, 3))
	b.ChangePlayer()

	var x, o [BoardSpaces]int
	var xTurn bool
	b.GetState(&x, &o, &xTurn)
	require.False(t, xTurn)
	require.Equal(t, 1, x[4])
	require.Equal(t, 2, o[16])

	// The copies are not shared with the board.
	x[4] = 9
	require.Equal(t, 1, b.Checkers(PlayerX, 4))
	x[4] = 1

	b.RestoreState(&x, &o, xTurn)
	var x2, o2 [BoardSpaces]int
	var xTurn2 bool
	b.GetState(&x2, &o2, &xTurn2)
	require.Equal(t, x, x2)
	require.Equal(t, o, o2)
	require.Equal(t, xTurn, xTurn2)
}

func TestRestoreUndoesMove(t *testing.T) {
	b := NewBoard()
	saved := b.State()

	require.True(t, b.PerformMove(7, 2))
	b.ChangePlayer()
	require.NotEqual(t, saved, b.State())

	b.Restore(saved)
	require.Equal(t, saved, b.State())
	require.Equal(t, NewBoard().State(), b.State())
}

func TestRestoreStateIsNotValidated(t *testing.T) {
	var s State
	s.X[3] = 20
	s.O[3] = 4
	b := NewBoard()
	b.Restore(s)
	require.Equal(t, s, b.State())
	require.Equal(t, 20, s.Checkers(PlayerX))
	require.Equal(t, PlayerO, b.Turn())
}

func TestStateString(t *testing.T) {
	s := NewBoard().State()
	require.Equal(t, "x:0,2,0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0;o:0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0,2,0;turn:x", s.String())

	parsed, err := ParseState(s.String())
	require.NoError(t, err)
	require.Equal(t, s, parsed)

	s.XTurn = false
	parsed, err = ParseState(s.String())
	require.NoError(t, err)
	require.Equal(t, s, parsed)
}

func TestParseStateErrors(t *testing.T) {
	valid := NewBoard().State().String()
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing turn", "x:0,2,0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0;o:0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0,2,0"},
		{"short", "x:0,2;o:0,0;turn:x"},
		{"swapped", "o:0,2,0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0;x:0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0,2,0;turn:x"},
		{"negative", "x:0,-2,0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0;o:0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0,2,0;turn:x"},
		{"not a number", "x:0,a,0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0;o:0,0,0,0,0,3,0,0,0,0,3,0,0,0,0,0,2,0;turn:x"},
		{"unknown turn", valid[:len(valid)-1] + "z"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseState(test.input)
			require.Error(t, err)
		})
	}
}
