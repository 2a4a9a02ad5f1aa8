package host

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Solenox/halfgammon"
)

func (h *Host) write(message []byte) {
	if h.err != nil {
		return
	}
	_, err := h.w.Write(append(message, '\n'))
	if err != nil {
		h.err = err
		return
	}
	if h.verbose {
		log.Printf("-> %s", message)
	}
}

func (h *Host) sendEvent(e interface{}) {
	// JSON formatted messages.
	if h.json {
		switch ev := e.(type) {
		case *halfgammon.EventNotice:
			ev.Type = halfgammon.EventTypeNotice
		case *halfgammon.EventBoard:
			ev.Type = halfgammon.EventTypeBoard
		case *halfgammon.EventRolled:
			ev.Type = halfgammon.EventTypeRolled
		case *halfgammon.EventMoved:
			ev.Type = halfgammon.EventTypeMoved
		case *halfgammon.EventFailedMove:
			ev.Type = halfgammon.EventTypeFailedMove
		case *halfgammon.EventPassed:
			ev.Type = halfgammon.EventTypePassed
		case *halfgammon.EventWin:
			ev.Type = halfgammon.EventTypeWin
		default:
			log.Panicf("unknown event type %+v", ev)
		}

		buf, err := json.Marshal(e)
		if err != nil {
			log.Panicf("failed to marshal %+v: %s", e, err)
		}
		h.write(buf)
		return
	}

	// Human-readable messages.
	switch ev := e.(type) {
	case *halfgammon.EventNotice:
		h.write([]byte(fmt.Sprintf("notice %s", ev.Message)))
	case *halfgammon.EventBoard:
		scanner := bufio.NewScanner(bytes.NewReader(h.board.Render(h.board.Turn())))
		for scanner.Scan() {
			h.write(append([]byte("notice "), scanner.Bytes()...))
		}
	case *halfgammon.EventRolled:
		h.write([]byte(fmt.Sprintf("rolled %s %d", ev.Player, ev.Roll)))
	case *halfgammon.EventMoved:
		var bumped string
		if ev.Bumped {
			bumped = "*"
		}
		h.write([]byte(fmt.Sprintf("moved %s %d/%d%s", ev.Player, ev.From, ev.To, bumped)))
	case *halfgammon.EventFailedMove:
		h.write([]byte(fmt.Sprintf("failedmove %d %s", ev.From, ev.Reason)))
	case *halfgammon.EventPassed:
		h.write([]byte(fmt.Sprintf("passed %s %d", ev.Player, ev.Roll)))
	case *halfgammon.EventWin:
		h.write([]byte(fmt.Sprintf("win %s wins!", ev.Player)))
	default:
		log.Panicf("unknown event type %+v", ev)
	}
}

func (h *Host) sendNotice(message string) {
	h.sendEvent(&halfgammon.EventNotice{
		Message: message,
	})
}

func (h *Host) sendBoard() {
	ev := &halfgammon.EventBoard{
		State: h.board.State(),
		Roll:  h.roll,
	}
	ev.Player = h.board.Turn().String()
	if h.roll != 0 {
		ev.Legal = h.board.LegalMoves(h.roll)
	}
	if winner := h.board.Winner(); winner != halfgammon.PlayerNone {
		ev.Winner = winner.String()
	}
	h.sendEvent(ev)
}

func (h *Host) sendFailedMove(from int, reason string) {
	ev := &halfgammon.EventFailedMove{
		From:   from,
		Roll:   h.roll,
		Reason: reason,
	}
	ev.Player = h.board.Turn().String()
	h.sendEvent(ev)
}
