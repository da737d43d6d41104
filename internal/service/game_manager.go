// service/game_manager.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/videochess/videochess-backend/internal/chooser"
	"github.com/videochess/videochess-backend/internal/model"
	"github.com/videochess/videochess-backend/internal/store"
)

// ChooserFactory builds the chooser driving one side, keyed by the model
// name the game was created with.
type ChooserFactory func(modelName string) chooser.Chooser

// GameManager owns the live game registry and drives the turn loops.
type GameManager struct {
	games      map[string]*model.Game
	mu         sync.RWMutex
	store      *store.Store
	newChooser ChooserFactory
	turnWait   time.Duration
}

func NewGameManager(st *store.Store, factory ChooserFactory) *GameManager {
	return &GameManager{
		games:      make(map[string]*model.Game),
		store:      st,
		newChooser: factory,
	}
}

// SetTurnWait inserts a pause between autoplayed turns so spectators can
// follow along. Zero (the default) plays as fast as the choosers answer.
func (gm *GameManager) SetTurnWait(d time.Duration) {
	gm.turnWait = d
}

func (gm *GameManager) CreateGame(cfg model.GameConfig) (string, error) {
	gameID := uuid.New().String()

	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return "", errors.New("game already exists")
	}
	gm.games[gameID] = model.NewGame(gameID, cfg)
	return gameID, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.New("game not found")
	}
	return game, nil
}

func (gm *GameManager) GetSnapshot(gameID string) (model.Snapshot, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return game.Snapshot(), nil
}

func (gm *GameManager) GameLog(gameID string) ([]model.TurnRecord, error) {
	if _, err := gm.GetGame(gameID); err != nil {
		return nil, err
	}
	return gm.store.GameLog(gameID)
}

// StartGame launches the autonomous turn loop for a game. Starting twice is
// an error so two loops can never fight over one game.
func (gm *GameManager) StartGame(gameID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	if !game.MarkStarted() {
		return errors.New("game already started")
	}
	go gm.runGame(game)
	return nil
}

// StepGame advances a game by exactly one turn.
func (gm *GameManager) StepGame(gameID string) (model.TurnRecord, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.TurnRecord{}, err
	}
	return gm.playTurn(context.Background(), game)
}

// runGame plays turns until checkmate, stalemate, or the turn cap.
func (gm *GameManager) runGame(game *model.Game) {
	ctx := context.Background()
	for !game.Over() {
		if _, err := gm.playTurn(ctx, game); err != nil {
			log.Printf("game %s: turn failed: %v", game.ID, err)
			return
		}
		if gm.turnWait > 0 {
			time.Sleep(gm.turnWait)
		}
	}
	snap := game.Snapshot()
	log.Printf("game %s finished: %s after %d plies", game.ID, snap.Status, snap.Ply)
}

// playTurn runs one full turn: snapshot, choose, commit (with the
// first-legal-move fallback on chooser failure), persist, and report.
func (gm *GameManager) playTurn(ctx context.Context, game *model.Game) (model.TurnRecord, error) {
	if game.TurnCapReached() {
		return model.TurnRecord{}, errors.New("turn cap reached")
	}
	snap := game.BeginTurn()
	if snap.Status != model.StatusOngoing {
		return model.TurnRecord{}, fmt.Errorf("game is %s", snap.Status)
	}

	side := snap.Players.White
	if snap.ToMove == model.Black {
		side = snap.Players.Black
	}
	ch := gm.newChooser(side.Model)

	started := time.Now()
	decision, err := ch.Choose(ctx, snap)
	if err != nil {
		// An unusable chooser answer must not stall the game; Commit's
		// fallback picks the first legal move.
		log.Printf("game %s: chooser for %s failed: %v", game.ID, snap.ToMove, err)
		decision = chooser.Decision{}
	}

	record, err := game.Commit(decision.Action, decision.Reasoning, time.Since(started).Milliseconds())
	if err != nil {
		return model.TurnRecord{}, err
	}
	if err := gm.store.AppendTurn(game.ID, record); err != nil {
		log.Printf("game %s: failed to persist turn %d: %v", game.ID, record.Ply, err)
	}
	return record, nil
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID)
}
