package host

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Solenox/halfgammon"
)

// maxPasses is the number of consecutive passed turns after which automatic
// rolling stops.
const maxPasses = 2

// rollTurn rolls for the player to move. Turns where no move is possible are
// passed, and with auto-roll the next player is rolled for until somebody can
// move or maxPasses turns in a row have passed.
func (h *Host) rollTurn() {
	if h.started.IsZero() {
		h.started = time.Now()
	}

	for {
		player := h.board.Turn()
		h.roll = h.rollDie()
		ev := &halfgammon.EventRolled{
			Roll: h.roll,
		}
		ev.Player = player.String()
		h.sendEvent(ev)

		if h.board.IsMovePossible(h.roll) {
			h.sendBoard()
			return
		}

		passed := &halfgammon.EventPassed{
			Roll: h.roll,
		}
		passed.Player = player.String()
		h.sendEvent(passed)
		h.recordEvent(player, h.roll, nil)

		h.board.ChangePlayer()
		h.roll = 0
		h.passes++
		if h.autoRoll && h.passes >= maxPasses {
			h.autoRoll = false
			h.sendNotice(h.translate("Neither player can move. Automatic rolling has been stopped."))
		}
		if !h.autoRoll || h.err != nil {
			h.sendBoard()
			return
		}
	}
}

func (h *Host) nextTurn() {
	h.board.ChangePlayer()
	h.roll = 0
	h.passes = 0
	if h.autoRoll {
		h.rollTurn()
		return
	}
	h.sendBoard()
}

func (h *Host) move(from int) {
	if h.roll == 0 {
		h.sendFailedMove(from, h.translate("You must roll before moving."))
		return
	}

	before := &snapshot{
		State:  h.board.State(),
		Roll:   h.roll,
		replay: len(h.replay),
	}
	result, ok := h.board.Move(from, h.roll)
	if !ok {
		h.sendFailedMove(from, h.moveFailure(from))
		return
	}
	h.undo = before

	ev := &halfgammon.EventMoved{
		From:   result.From,
		To:     result.To,
		Bumped: result.Bumped,
	}
	ev.Player = result.Player.String()
	h.sendEvent(ev)
	h.recordEvent(result.Player, h.roll, &result)

	if h.handleWin() {
		return
	}
	h.nextTurn()
}

// moveFailure explains why a move from the space was rejected.
func (h *Host) moveFailure(from int) string {
	player := h.board.Turn()
	switch {
	case h.board.HasBumpedPiece() && from != player.Bar():
		return h.translate("You must re-enter your bumped checker first.")
	case from == player.Home():
		return h.translate("Checkers which have reached home may not move.")
	case h.board.Checkers(player, from) == 0:
		return h.translate("You have no checkers on that space.")
	default:
		return h.translate("That space is blocked.")
	}
}

func (h *Host) takeBack() {
	if h.undo == nil {
		h.sendNotice(h.translate("There is no move to take back."))
		return
	}
	h.board.Restore(h.undo.State)
	h.roll = h.undo.Roll
	h.replay = h.replay[:h.undo.replay]
	h.undo = nil

	h.sendNotice(h.translate("The last move was taken back."))
	h.sendBoard()
}

func (h *Host) save(path string) error {
	buf, err := json.Marshal(&snapshot{
		State: h.board.State(),
		Roll:  h.roll,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

// load replaces the game with a saved one. The saved state is trusted.
func (h *Host) load(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s := &snapshot{}
	err = json.Unmarshal(buf, s)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	h.board.Restore(s.State)
	h.roll = s.Roll
	h.passes = 0
	h.undo = nil
	h.replay = h.replay[:0]
	return nil
}

// recordEvent appends a replay line. A nil result records a passed turn.
func (h *Host) recordEvent(player halfgammon.Player, roll int, result *halfgammon.MoveResult) {
	line := []byte(fmt.Sprintf("%s r %d", player, roll))
	if result == nil {
		line = append(line, []byte(" -")...)
	} else {
		line = append(line, []byte(fmt.Sprintf(" m %d/%d", result.From, result.To))...)
		if result.Bumped {
			line = append(line, '*')
		}
	}
	h.replay = append(h.replay, line)
}

func (h *Host) handleWin() bool {
	winner := h.board.Winner()
	if winner == halfgammon.PlayerNone {
		return false
	}
	h.ended = time.Now()
	h.roll = 0

	h.replay = append([][]byte{[]byte(fmt.Sprintf("i %d %s %s", h.started.Unix(), h.id, winner))}, h.replay...)

	err := recordGameResult(h.id, h.started, h.ended, winner, h.board.State(), h.replay)
	if err != nil {
		log.Printf("failed to record game result: %s", err)
	}

	ev := &halfgammon.EventWin{}
	ev.Player = winner.String()
	h.sendEvent(ev)
	h.sendBoard()
	return true
}
