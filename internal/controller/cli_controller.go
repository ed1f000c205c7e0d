package controller

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/falconchess/internal/command"
	"github.com/benbeisheim/falconchess/internal/model"
	"github.com/benbeisheim/falconchess/internal/service"
	"go.uber.org/zap"
)

var errNoGame = errors.New("no active game, start one with new")

type outcome int

const (
	outcomeInfo outcome = iota
	outcomeAccepted
	outcomeRejected
	outcomeQuit
)

// CLIController drives games from a line-oriented stream. Lines are either
// REPL commands ("move e2 e4") or JSON command envelopes.
type CLIController struct {
	gameService *service.GameService
	out         io.Writer
	prompt      string
	logger      *zap.Logger
	gameID      string
}

func NewCLIController(gameService *service.GameService, out io.Writer, prompt string, logger *zap.Logger) *CLIController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLIController{
		gameService: gameService,
		out:         out,
		prompt:      prompt,
		logger:      logger,
	}
}

// Run reads commands from in until EOF or quit.
func (c *CLIController) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, c.prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		msg, err := decodeLine(line)
		if err != nil {
			c.sendError(err)
			continue
		}
		res, err := c.handleMessage(msg)
		if err != nil {
			c.logger.Debug("command failed", zap.String("type", string(msg.Type)), zap.Error(err))
			c.sendError(err)
			continue
		}
		if res == outcomeQuit {
			return nil
		}
	}
	fmt.Fprintln(c.out)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

func decodeLine(line string) (command.Message, error) {
	if !strings.HasPrefix(line, "{") {
		return command.ParseLine(line)
	}
	var msg command.Message
	if err := json.Unmarshal([]byte(line), &msg); err != nil {
		return command.Message{}, fmt.Errorf("%w: %v", command.ErrBadCommand, err)
	}
	return msg, nil
}

func (c *CLIController) handleMessage(msg command.Message) (outcome, error) {
	switch msg.Type {
	case command.MessageTypeNew:
		gameID, err := c.gameService.CreateGame()
		if err != nil {
			return outcomeInfo, err
		}
		c.gameID = gameID
		fmt.Fprintf(c.out, "game %s\n", gameID)
		return outcomeInfo, c.printBoard()

	case command.MessageTypeMove:
		move, err := command.DecodePayload[command.MovePayload](msg)
		if err != nil {
			return outcomeInfo, err
		}
		if c.gameID == "" {
			return outcomeInfo, errNoGame
		}
		ok, err := c.gameService.HandleMove(c.gameID, move.From, move.To)
		return c.report(ok, err)

	case command.MessageTypeEnter:
		entry, err := command.DecodePayload[command.EnterPayload](msg)
		if err != nil {
			return outcomeInfo, err
		}
		if c.gameID == "" {
			return outcomeInfo, errNoGame
		}
		ok, err := c.gameService.HandleEntry(c.gameID, entry.Kind, entry.Square, entry.Color)
		return c.report(ok, err)

	case command.MessageTypeBoard:
		return outcomeInfo, c.printBoard()

	case command.MessageTypeState:
		snap, err := c.snapshot()
		if err != nil {
			return outcomeInfo, err
		}
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return outcomeInfo, fmt.Errorf("encode state: %w", err)
		}
		fmt.Fprintln(c.out, string(data))
		return outcomeInfo, nil

	case command.MessageTypeHistory:
		snap, err := c.snapshot()
		if err != nil {
			return outcomeInfo, err
		}
		c.printHistory(snap.MoveHistory)
		return outcomeInfo, nil

	case command.MessageTypeGames:
		for _, id := range c.gameService.ListGames() {
			marker := " "
			if id == c.gameID {
				marker = "*"
			}
			fmt.Fprintf(c.out, "%s %s\n", marker, id)
		}
		return outcomeInfo, nil

	case command.MessageTypeUse:
		p, err := command.DecodePayload[command.GamePayload](msg)
		if err != nil {
			return outcomeInfo, err
		}
		if _, err := c.gameService.GetGameState(p.GameID); err != nil {
			return outcomeInfo, err
		}
		c.gameID = p.GameID
		return outcomeInfo, c.printBoard()

	case command.MessageTypeEnd:
		gameID := c.gameID
		if len(msg.Payload) > 0 {
			p, err := command.DecodePayload[command.GamePayload](msg)
			if err != nil {
				return outcomeInfo, err
			}
			gameID = p.GameID
		}
		if gameID == "" {
			return outcomeInfo, errNoGame
		}
		if err := c.gameService.EndGame(gameID); err != nil {
			return outcomeInfo, err
		}
		if gameID == c.gameID {
			c.gameID = ""
		}
		fmt.Fprintf(c.out, "ended %s\n", gameID)
		return outcomeInfo, nil

	case command.MessageTypeHelp:
		fmt.Fprint(c.out, helpText)
		return outcomeInfo, nil

	case command.MessageTypeQuit:
		return outcomeQuit, nil

	default:
		return outcomeInfo, fmt.Errorf("%w: unknown message type: %s", command.ErrBadCommand, msg.Type)
	}
}

func (c *CLIController) report(ok bool, err error) (outcome, error) {
	if err != nil {
		return outcomeInfo, err
	}
	if !ok {
		fmt.Fprintln(c.out, "illegal")
		return outcomeRejected, nil
	}
	return outcomeAccepted, c.printBoard()
}

func (c *CLIController) snapshot() (model.Snapshot, error) {
	if c.gameID == "" {
		return model.Snapshot{}, errNoGame
	}
	return c.gameService.GetGameState(c.gameID)
}

func (c *CLIController) printBoard() error {
	snap, err := c.snapshot()
	if err != nil {
		return err
	}
	board, err := c.gameService.RenderBoard(c.gameID)
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, board)
	fmt.Fprintln(c.out, status(snap))
	return nil
}

func (c *CLIController) printHistory(history []model.Move) {
	for i, move := range history {
		line := fmt.Sprintf("%d. %s", i+1, move.WhitePly.Notation)
		if move.BlackPly != nil {
			line += " " + move.BlackPly.Notation
		}
		fmt.Fprintln(c.out, line)
	}
}

func status(snap model.Snapshot) string {
	switch snap.State {
	case model.WhiteWon:
		return "white wins"
	case model.BlackWon:
		return "black wins"
	}
	return string(snap.ToMove) + " to move"
}

// Helper method to send error messages
func (c *CLIController) sendError(err error) {
	fmt.Fprintf(c.out, "error: %v\n", err)
}

const helpText = `commands:
  new                          start a game and make it current
  move <from> <to>             move a piece, "move" may be omitted
  enter <falcon|hunter> <sq>   enter a fairy piece for the side to move
  board | state | history      show the current game
  games | use <id> | end [id]  manage games
  quit
`
