package host

//go:generate xgotext -no-locations -default halfgammon -in . -out locales

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"math/big"
	"time"

	"github.com/Solenox/halfgammon"
	"github.com/google/uuid"
)

// Options configures a Host.
type Options struct {
	DataSource string // Postgres data source used to record finished games.
	Language   string // Preferred language for notices, such as "de".
	JSON       bool   // Write events as JSON instead of text lines.
	AutoRoll   bool   // Roll for each player at the start of their turn.
	Verbose    bool   // Log every command and event.
}

// Host runs a single game of HalfGammon between two players sharing one input.
type Host struct {
	board *halfgammon.Board
	id    uuid.UUID
	roll  int

	// passes counts the turns passed since the last move.
	passes int

	undo   *snapshot
	replay [][]byte

	started time.Time
	ended   time.Time

	json     bool
	autoRoll bool
	verbose  bool
	language string

	rollDie func() int

	w    io.Writer
	err  error
	quit bool
}

// snapshot is the saved form of a game, used by undo and by save files.
type snapshot struct {
	State  halfgammon.State `json:"state"`
	Roll   int              `json:"roll"`
	replay int
}

func NewHost(op *Options) (*Host, error) {
	if op == nil {
		op = &Options{}
	}

	if err := loadLocales(); err != nil {
		return nil, err
	}

	if op.DataSource != "" {
		err := connectDB(op.DataSource)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		err = testDBConnection()
		if err != nil {
			return nil, fmt.Errorf("failed to test database connection: %w", err)
		}

		err = initDB()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		log.Println("Connected to database successfully")
	}

	return &Host{
		board:    halfgammon.NewBoard(),
		id:       uuid.New(),
		json:     op.JSON,
		autoRoll: op.AutoRoll,
		verbose:  op.Verbose,
		language: "halfgammon-" + string(matchLanguage([]byte(op.Language))),
		rollDie: func() int {
			return RandInt(6) + 1
		},
	}, nil
}

// Board returns the board being played on.
func (h *Host) Board() *halfgammon.Board {
	return h.board
}

// Run reads commands from r until the game is won, a quit command is received
// or r is exhausted. Events are written to w.
func (h *Host) Run(r io.Reader, w io.Writer) error {
	h.w = w

	h.sendNotice(h.translate("Welcome to HalfGammon. Send 'help' for a list of commands."))
	h.sendBoard()
	if h.autoRoll && h.roll == 0 && !h.board.GameOver() {
		h.rollTurn()
	}

	scanner := bufio.NewScanner(r)
	for !h.finished() && scanner.Scan() {
		if h.verbose {
			log.Printf("<- %s", scanner.Bytes())
		}
		h.handleCommand(scanner.Bytes())
	}
	if h.err != nil {
		return fmt.Errorf("failed to write event: %w", h.err)
	} else if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	return nil
}

func (h *Host) finished() bool {
	return h.quit || h.err != nil || h.board.GameOver()
}

// RandInt returns a uniformly distributed number in [0, max).
func RandInt(max int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(i.Int64())
}
