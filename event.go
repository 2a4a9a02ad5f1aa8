package halfgammon

// events are always written by the host

const (
	EventTypeNotice     = "notice"
	EventTypeBoard      = "board"
	EventTypeRolled     = "rolled"
	EventTypeMoved      = "moved"
	EventTypeFailedMove = "failedmove"
	EventTypePassed     = "passed"
	EventTypeWin        = "win"
)

type Event struct {
	Type   string
	Player string
}

type EventNotice struct {
	Event
	Message string
}

type EventBoard struct {
	Event
	State
	Roll   int
	Legal  []int // Spaces which may be moved from with the current roll.
	Winner string
}

type EventRolled struct {
	Event
	Roll int
}

type EventMoved struct {
	Event
	From   int
	To     int
	Bumped bool
}

type EventFailedMove struct {
	Event
	From   int
	Roll   int
	Reason string
}

type EventPassed struct {
	Event
	Roll int
}

type EventWin struct {
	Event
}
