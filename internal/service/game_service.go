package service

import (
	"fmt"
	"strings"

	"github.com/benbeisheim/falconchess/internal/model"
)

// GameService turns caller text (square names, piece and color names) into engine calls.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID, err := gs.gameManager.CreateGame()
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) EndGame(gameID string) error {
	return gs.gameManager.RemoveGame(gameID)
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.GameIDs()
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) RenderBoard(gameID string) (string, error) {
	return gs.gameManager.RenderBoard(gameID)
}

func (gs *GameService) HandleMove(gameID string, from, to string) (bool, error) {
	return gs.gameManager.MakeMove(gameID, normalizeSquare(from), normalizeSquare(to))
}

// HandleEntry enters a fairy piece. An empty colorName means the side to move.
func (gs *GameService) HandleEntry(gameID string, kindName, square, colorName string) (bool, error) {
	kind, err := model.ParsePieceType(kindName)
	if err != nil {
		return false, err
	}
	var color model.Color
	if strings.TrimSpace(colorName) != "" {
		if color, err = model.ParseColor(colorName); err != nil {
			return false, err
		}
	}
	return gs.gameManager.EnterFairyPiece(gameID, kind, normalizeSquare(square), color)
}

func normalizeSquare(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
