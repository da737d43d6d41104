package model

// LegalMoves filters the pseudo-legal list down to moves that leave the
// mover's own king un-attacked. An empty result is the terminal-condition
// signal, not an error.
func (gs *GameState) LegalMoves() []Move {
	legal := []Move{}
	for _, m := range gs.PseudoLegalMoves() {
		if !gs.leavesKingInCheck(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingInCheck simulates the move on a value copy of the state. The
// copy shares the history slice but applyCore never touches it, so nothing
// aliases back into the live state.
func (gs *GameState) leavesKingInCheck(m Move) bool {
	mover := gs.ToMove
	scratch := *gs
	scratch.applyCore(m)
	return scratch.Board.isKingInCheck(mover)
}
