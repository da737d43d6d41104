package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/videochess/videochess-backend/internal/ws"
)

const defaultMaxTurns = 300

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // clientID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game owns a single game's state and its observers. The rules engine never
// does I/O; everything network-facing hangs off this aggregate.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       *GameState
	connections *GameConnections
	players     Players
	whiteClock  *Clock
	blackClock  *Clock
	maxTurns    int
	ply         int
	lastRecord  *TurnRecord
	started     bool
}

func NewGame(id string, cfg GameConfig) *Game {
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Game{
		ID:          id,
		state:       NewGameState(),
		connections: NewGameConnections(),
		players: Players{
			White: SidePlayer{Model: cfg.WhiteModel, Color: White},
			Black: SidePlayer{Model: cfg.BlackModel, Color: Black},
		},
		whiteClock: NewClock(),
		blackClock: NewClock(),
		maxTurns:   maxTurns,
	}
}

// Snapshot is the read-only view handed to move choosers and API clients.
type Snapshot struct {
	GameID     string      `json:"gameId"`
	Fen        string      `json:"fen"`
	BoardText  string      `json:"boardText"`
	ToMove     Color       `json:"toMove"`
	MoveNumber int         `json:"moveNumber"`
	Castling   string      `json:"castling"`
	EnPassant  string      `json:"enPassant,omitempty"`
	IsCheck    bool        `json:"isCheck"`
	LegalMoves []string    `json:"legalMoves"`
	Status     Status      `json:"status"`
	Halfmove   int         `json:"halfmoveClock"`
	Ply        int         `json:"ply"`
	Players    Players     `json:"players"`
	LastMove   *TurnRecord `json:"lastMove,omitempty"`
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	legal := g.state.LegalMoves()
	snap := Snapshot{
		GameID:     g.ID,
		Fen:        g.state.FEN(),
		BoardText:  g.state.Board.String(),
		ToMove:     g.state.ToMove,
		MoveNumber: g.state.MoveNumber,
		Castling:   g.state.Castling.String(),
		EnPassant:  g.state.EnPassantNotation(),
		IsCheck:    g.state.InCheck,
		LegalMoves: g.state.EncodeMoves(legal),
		Halfmove:   g.state.Halfmove,
		Ply:        g.ply,
		Players:    g.clientPlayers(),
		LastMove:   g.lastRecord,
	}
	if len(legal) > 0 {
		snap.Status = StatusOngoing
	} else if g.state.InCheck {
		snap.Status = StatusCheckmate
	} else {
		snap.Status = StatusStalemate
	}
	return snap
}

func (g *Game) clientPlayers() Players {
	p := g.players
	p.White.ThinkMs = g.whiteClock.Elapsed().Milliseconds()
	p.Black.ThinkMs = g.blackClock.Elapsed().Milliseconds()
	return p
}

// MarkStarted flips the started flag, returning false if the game loop was
// already launched.
func (g *Game) MarkStarted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.started {
		return false
	}
	g.started = true
	return true
}

func (g *Game) TurnCapReached() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ply >= g.maxTurns
}

// BeginTurn starts the mover's think clock and returns the snapshot the
// chooser will decide from.
func (g *Game) BeginTurn() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.clockFor(g.state.ToMove).Start()
	return g.snapshot()
}

func (g *Game) clockFor(c Color) *Clock {
	if c == White {
		return g.whiteClock
	}
	return g.blackClock
}

// Commit resolves the chooser's move text against the current legal-move
// list and applies it. Unresolvable text falls back to the first legal move
// rather than failing the turn; the record carries both the requested text
// and what was actually played.
func (g *Game) Commit(requested, reasoning string, thinkMs int64) (TurnRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	mover := g.state.ToMove
	legal := g.state.LegalMoves()
	if len(legal) == 0 {
		return TurnRecord{}, errors.New("game is over")
	}

	move, ok := g.state.ResolveMove(requested, legal)
	if !ok {
		move = legal[0]
		fmt.Printf("game %s: unresolvable move %q, falling back to %s\n",
			g.ID, requested, g.state.EncodeMove(move))
	}
	action := g.state.EncodeMove(move)
	moveNumber := g.state.MoveNumber

	if err := g.state.Apply(move); err != nil {
		return TurnRecord{}, err
	}
	g.clockFor(mover).Stop()
	g.ply++

	record := TurnRecord{
		Ply:        g.ply,
		MoveNumber: moveNumber,
		Player:     mover,
		Action:     action,
		Requested:  requested,
		Reasoning:  reasoning,
		Fallback:   !ok,
		Fen:        g.state.FEN(),
		Board:      g.state.Board.String(),
		ThinkMs:    thinkMs,
		Status:     g.state.Status(),
	}
	g.lastRecord = &record

	go g.broadcastState()

	return record, nil
}

// State returns a deep copy for callers that need the raw engine state.
func (g *Game) State() *GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Clone()
}

func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state.Status() != StatusOngoing || g.ply >= g.maxTurns
}

func (g *Game) RegisterConnection(clientID string, conn *websocket.Conn) error {
	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		// Keep the healthy connection and reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()

	// Send the current state to the new spectator.
	go g.broadcastState()
	return nil
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	delete(g.connections.connections, clientID)
}

func (g *Game) broadcastState() {
	snap := g.Snapshot()
	payload, err := json.Marshal(snap)
	if err != nil {
		fmt.Println("Failed to marshal snapshot to JSON", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for clientID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			fmt.Println("Failed to send state to client", clientID, err)
			delete(g.connections.connections, clientID)
		}
	}
}
