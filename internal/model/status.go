package model

// Status is derived from the legal-move count and the check flag. Checkmate
// and stalemate are the only terminal conditions the engine itself detects;
// the 50-move clock and repetition counts are tracked as data but their
// enforcement is left to the owning game loop.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

func (gs *GameState) Status() Status {
	if len(gs.LegalMoves()) > 0 {
		return StatusOngoing
	}
	if gs.InCheck {
		return StatusCheckmate
	}
	return StatusStalemate
}

// Winner returns the winning color for a checkmate, or false for anything
// else (ongoing games and stalemates have no winner).
func (gs *GameState) Winner() (Color, bool) {
	if gs.Status() != StatusCheckmate {
		return "", false
	}
	return gs.ToMove.Opponent(), true
}
