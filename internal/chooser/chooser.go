package chooser

import (
	"context"
	"errors"

	"github.com/videochess/videochess-backend/internal/model"
)

// Decision is what a chooser hands back: move text intended to match one
// entry of the snapshot's legal-move list, plus whatever reasoning it gave.
type Decision struct {
	Action    string `json:"action"`
	Reasoning string `json:"reasoning"`
}

// Chooser selects a move from a game snapshot. The engine treats the
// chooser as an untrusted collaborator: ill-formed output is resolved by
// the game's fallback policy, never by failing the turn.
type Chooser interface {
	Choose(ctx context.Context, snap model.Snapshot) (Decision, error)
}

// FirstMove deterministically picks the first legal move. It is the chooser
// used in tests and the behavior games fall back to on bad external input.
type FirstMove struct{}

func (FirstMove) Choose(_ context.Context, snap model.Snapshot) (Decision, error) {
	if len(snap.LegalMoves) == 0 {
		return Decision{}, errors.New("no legal moves to choose from")
	}
	return Decision{
		Action:    snap.LegalMoves[0],
		Reasoning: "first legal move",
	}, nil
}
