package model

// EncodeMove renders a legal move in simplified short algebraic notation:
// piece letter (empty for pawns), origin file for pawn captures, "x" when a
// piece is taken, then the destination square. Castles render as O-O/O-O-O.
// There are no disambiguation qualifiers and no check/mate suffixes; two
// moves that render identically resolve to whichever is generated first.
// Must be called before the move is applied.
func (gs *GameState) EncodeMove(m Move) string {
	switch m.Flag {
	case FlagCastleKingside:
		return "O-O"
	case FlagCastleQueenside:
		return "O-O-O"
	}
	piece := gs.Board.pieceAt(m.From)
	capture := !gs.Board.pieceAt(m.To).IsEmpty() || m.Flag == FlagEnPassant
	notation := piece.Type.getPieceNotation()
	if piece.Type == Pawn && capture {
		notation += m.From.getFileNotation()
	}
	if capture {
		notation += "x"
	}
	return notation + m.To.getSquareNotation()
}

// EncodeMoves renders the whole legal-move list in generation order. The
// first entry doubles as the deterministic fallback when external move text
// cannot be resolved.
func (gs *GameState) EncodeMoves(legal []Move) []string {
	out := make([]string, len(legal))
	for i, m := range legal {
		out[i] = gs.EncodeMove(m)
	}
	return out
}

// ResolveMove matches external move text against the current legal-move
// list by exact encoding and returns the first hit. The second return is
// false when nothing matches; the caller decides the fallback policy.
func (gs *GameState) ResolveMove(text string, legal []Move) (Move, bool) {
	for _, m := range legal {
		if gs.EncodeMove(m) == text {
			return m, true
		}
	}
	return Move{}, false
}
