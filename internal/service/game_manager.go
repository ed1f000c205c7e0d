// service/game_manager.go
package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/benbeisheim/falconchess/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameManager owns every running game. Each game has its own board and state;
// the manager's lock serializes all access to them.
type GameManager struct {
	games    map[string]*model.Game
	maxGames int
	logger   *zap.Logger
	mu       sync.RWMutex
}

func NewGameManager(maxGames int, logger *zap.Logger) *GameManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameManager{
		games:    make(map[string]*model.Game),
		maxGames: maxGames,
		logger:   logger,
	}
}

func (gm *GameManager) CreateGame() (string, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.maxGames > 0 && len(gm.games) >= gm.maxGames {
		gm.logger.Warn("game limit reached", zap.Int("max_games", gm.maxGames))
		return "", fmt.Errorf("%w: limit is %d", ErrTooManyGames, gm.maxGames)
	}

	gameID := uuid.New().String()
	gm.games[gameID] = model.NewGame()
	gm.logger.Info("game created", zap.String("game_id", gameID), zap.Int("games", len(gm.games)))
	return gameID, nil
}

// game must be called with gm.mu held.
func (gm *GameManager) game(gameID string) (*model.Game, error) {
	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, err := gm.game(gameID); err != nil {
		return err
	}
	delete(gm.games, gameID)
	gm.logger.Info("game removed", zap.String("game_id", gameID))
	return nil
}

func (gm *GameManager) GameIDs() []string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	ids := make([]string, 0, len(gm.games))
	for id := range gm.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (gm *GameManager) GetGameState(gameID string) (model.Snapshot, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, err := gm.game(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return game.Snapshot(), nil
}

func (gm *GameManager) RenderBoard(gameID string) (string, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, err := gm.game(gameID)
	if err != nil {
		return "", err
	}
	return game.Board(), nil
}

func (gm *GameManager) MakeMove(gameID string, from, to string) (bool, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	game, err := gm.game(gameID)
	if err != nil {
		return false, err
	}

	mover := game.Turn()
	ok, err := game.MakeMove(from, to)
	if err != nil {
		gm.logger.Warn("malformed move", zap.String("game_id", gameID),
			zap.String("from", from), zap.String("to", to), zap.Error(err))
		return false, err
	}
	gm.logger.Debug("move",
		zap.String("game_id", gameID),
		zap.String("color", string(mover)),
		zap.String("from", from),
		zap.String("to", to),
		zap.Bool("accepted", ok),
	)
	if ok {
		gm.logOutcome(gameID, game)
	}
	return ok, nil
}

// EnterFairyPiece places a fairy piece for color, or for the side to move when color is empty.
func (gm *GameManager) EnterFairyPiece(gameID string, kind model.PieceType, square string, color model.Color) (bool, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	game, err := gm.game(gameID)
	if err != nil {
		return false, err
	}
	if color == "" {
		color = game.Turn()
	}

	ok, err := game.EnterFairyPiece(kind, square, color)
	if err != nil {
		gm.logger.Warn("malformed fairy entry", zap.String("game_id", gameID),
			zap.String("kind", string(kind)), zap.String("square", square), zap.Error(err))
		return false, err
	}
	gm.logger.Debug("fairy entry",
		zap.String("game_id", gameID),
		zap.String("color", string(color)),
		zap.String("kind", string(kind)),
		zap.String("square", square),
		zap.Bool("accepted", ok),
	)
	return ok, nil
}

func (gm *GameManager) logOutcome(gameID string, game *model.Game) {
	if state := game.State(); state != model.InProgress {
		gm.logger.Info("game finished", zap.String("game_id", gameID), zap.Stringer("state", state))
	}
}
