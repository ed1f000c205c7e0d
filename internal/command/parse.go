package command

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadCommand = errors.New("bad command")

// ParseLine reads one REPL line:
//
//	move e2 e4 | e2 e4 | enter falcon d1 [white] | state | board | history
//	new | games | use <id> | end [id] | help | quit
func ParseLine(line string) (Message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Message{}, fmt.Errorf("%w: empty line", ErrBadCommand)
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	// bare "e2 e4"
	if len(fields) == 2 && len(fields[0]) == 2 && len(fields[1]) == 2 {
		return NewMessage(MessageTypeMove, MovePayload{From: fields[0], To: fields[1]})
	}

	switch MessageType(verb) {
	case MessageTypeMove:
		if len(args) != 2 {
			return Message{}, fmt.Errorf("%w: usage: move <from> <to>", ErrBadCommand)
		}
		return NewMessage(MessageTypeMove, MovePayload{From: args[0], To: args[1]})
	case MessageTypeEnter:
		if len(args) != 2 && len(args) != 3 {
			return Message{}, fmt.Errorf("%w: usage: enter <falcon|hunter> <square> [color]", ErrBadCommand)
		}
		p := EnterPayload{Kind: args[0], Square: args[1]}
		if len(args) == 3 {
			p.Color = args[2]
		}
		return NewMessage(MessageTypeEnter, p)
	case MessageTypeUse:
		if len(args) != 1 {
			return Message{}, fmt.Errorf("%w: usage: use <game id>", ErrBadCommand)
		}
		return NewMessage(MessageTypeUse, GamePayload{GameID: args[0]})
	case MessageTypeEnd:
		if len(args) > 1 {
			return Message{}, fmt.Errorf("%w: usage: end [game id]", ErrBadCommand)
		}
		if len(args) == 1 {
			return NewMessage(MessageTypeEnd, GamePayload{GameID: args[0]})
		}
		return Message{Type: MessageTypeEnd}, nil
	case MessageTypeNew, MessageTypeState, MessageTypeBoard, MessageTypeHistory,
		MessageTypeGames, MessageTypeHelp, MessageTypeQuit:
		if len(args) != 0 {
			return Message{}, fmt.Errorf("%w: %s takes no arguments", ErrBadCommand, verb)
		}
		return Message{Type: MessageType(verb)}, nil
	case "exit":
		return Message{Type: MessageTypeQuit}, nil
	}
	return Message{}, fmt.Errorf("%w: unknown command %q", ErrBadCommand, fields[0])
}
