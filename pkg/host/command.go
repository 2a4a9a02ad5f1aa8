package host

import (
	"bytes"
	"sort"
	"strconv"
	"strings"

	"github.com/Solenox/halfgammon"
)

func (h *Host) handleCommand(command []byte) {
	command = bytes.TrimSpace(command)

	firstSpace := bytes.IndexByte(command, ' ')
	var keyword string
	var startParameters int
	if firstSpace == -1 {
		keyword = string(command)
		startParameters = len(command)
	} else {
		keyword = string(command[:firstSpace])
		startParameters = firstSpace + 1
	}
	if keyword == "" {
		return
	}
	keyword = strings.ToLower(keyword)
	if alias, ok := halfgammon.CommandAliases[keyword]; ok {
		keyword = alias
	}
	params := bytes.Fields(command[startParameters:])

	switch keyword {
	case halfgammon.CommandHelp:
		if len(params) > 0 {
			helpCommand := string(bytes.ToLower(bytes.Join(params, []byte(" "))))
			if alias, ok := halfgammon.CommandAliases[helpCommand]; ok {
				helpCommand = alias
			}
			commandHelp := halfgammon.HelpText[helpCommand]
			if commandHelp != "" {
				h.sendNotice(helpCommand + " " + commandHelp)
			} else {
				h.sendNotice(h.translate("Unknown command: %s", helpCommand))
			}
			return
		}

		h.sendNotice(h.translate("Available commands:"))
		for _, c := range sortedCommands() {
			h.sendNotice(c + " " + halfgammon.HelpText[c])
		}
	case halfgammon.CommandBoard:
		h.sendBoard()
	case halfgammon.CommandRoll:
		if h.roll != 0 {
			h.sendNotice(h.translate("You have already rolled."))
			return
		}
		h.rollTurn()
	case halfgammon.CommandMove:
		if len(params) != 1 {
			h.sendFailedMove(0, h.translate("Specify the space to move a checker from. For example: move 7"))
			return
		}
		from, err := strconv.Atoi(string(params[0]))
		if err != nil {
			h.sendFailedMove(0, h.translate("Specify the space to move a checker from. For example: move 7"))
			return
		}
		h.move(from)
	case halfgammon.CommandEnter:
		h.move(h.board.Turn().Bar())
	case halfgammon.CommandUndo:
		h.takeBack()
	case halfgammon.CommandSave:
		if len(params) != 1 {
			h.sendNotice(h.translate("Specify a file to save to."))
			return
		}
		path := string(params[0])
		err := h.save(path)
		if err != nil {
			h.sendNotice(h.translate("Failed to save game: %s", err))
			return
		}
		h.sendNotice(h.translate("Saved game to %s.", path))
	case halfgammon.CommandLoad:
		if len(params) != 1 {
			h.sendNotice(h.translate("Specify a file to load from."))
			return
		}
		path := string(params[0])
		err := h.load(path)
		if err != nil {
			h.sendNotice(h.translate("Failed to load game: %s", err))
			return
		}
		h.sendNotice(h.translate("Loaded game from %s.", path))
		h.sendBoard()
	case halfgammon.CommandJSON:
		if len(params) != 1 {
			h.sendNotice(h.translate("To enable JSON formatted events, send 'json on'. To disable JSON formatted events, send 'json off'."))
			return
		}
		switch strings.ToLower(string(params[0])) {
		case "on":
			h.json = true
			h.sendNotice(h.translate("JSON formatted events enabled."))
		case "off":
			h.json = false
			h.sendNotice(h.translate("JSON formatted events disabled."))
		default:
			h.sendNotice(h.translate("To enable JSON formatted events, send 'json on'. To disable JSON formatted events, send 'json off'."))
		}
	case halfgammon.CommandQuit:
		h.quit = true
		h.sendNotice(h.translate("Goodbye."))
	default:
		h.sendNotice(h.translate("Unknown command: %s", keyword))
	}
}

func sortedCommands() []string {
	var commands []string
	for command := range halfgammon.HelpText {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	return commands
}
