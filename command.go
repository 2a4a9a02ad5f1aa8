package halfgammon

// commands are read by the host, one per line

const (
	CommandHelp  = "help"  // Print help information.
	CommandBoard = "board" // Print the current board.
	CommandRoll  = "roll"  // Roll the die.
	CommandMove  = "move"  // Move a checker from a space by the rolled amount.
	CommandEnter = "enter" // Re-enter a bumped checker by the rolled amount.
	CommandUndo  = "undo"  // Take back the last move.
	CommandSave  = "save"  // Save the game to a file.
	CommandLoad  = "load"  // Load a game from a file.
	CommandJSON  = "json"  // Enable or disable JSON formatted events.
	CommandQuit  = "quit"  // End the game.
)

// CommandAliases maps short forms to their commands.
var CommandAliases = map[string]string{
	"h":  CommandHelp,
	"b":  CommandBoard,
	"r":  CommandRoll,
	"m":  CommandMove,
	"mv": CommandMove,
	"e":  CommandEnter,
	"u":  CommandUndo,
	"q":  CommandQuit,
}

var HelpText = map[string]string{
	CommandHelp:  "[command] - Print help information.",
	CommandBoard: "- Print the current board.",
	CommandRoll:  "- Roll the die.",
	CommandMove:  "<space> - Move a checker from a space by the rolled amount.",
	CommandEnter: "- Re-enter a bumped checker by the rolled amount.",
	CommandUndo:  "- Take back the last move.",
	CommandSave:  "<file> - Save the game to a file.",
	CommandLoad:  "<file> - Load a game from a file.",
	CommandJSON:  "<on/off> - Enable or disable JSON formatted events.",
	CommandQuit:  "- End the game.",
}
