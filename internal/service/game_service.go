package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"

	"github.com/videochess/videochess-backend/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(cfg model.GameConfig) (string, error) {
	gameID, err := gs.gameManager.CreateGame(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) StartGame(gameID string) error {
	return gs.gameManager.StartGame(gameID)
}

func (gs *GameService) StepGame(gameID string) (model.TurnRecord, error) {
	return gs.gameManager.StepGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.Snapshot, error) {
	return gs.gameManager.GetSnapshot(gameID)
}

func (gs *GameService) GetGameLog(gameID string) ([]model.TurnRecord, error) {
	return gs.gameManager.GameLog(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string) {
	gs.gameManager.UnregisterConnection(gameID, clientID)
}
