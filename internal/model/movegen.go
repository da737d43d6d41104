package model

// PseudoLegalMoves enumerates every move for the side to move that obeys
// piece geometry and board occupancy, without yet testing whether the
// mover's own king is left attacked.
func (gs *GameState) PseudoLegalMoves() []Move {
	moves := []Move{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := gs.Board[row][col]
			if p.IsEmpty() || p.Color != gs.ToMove {
				continue
			}
			moves = append(moves, gs.pieceMoves(Square{Row: row, Col: col}, p)...)
		}
	}
	return moves
}

func (gs *GameState) pieceMoves(from Square, p Piece) []Move {
	switch p.Type {
	case Pawn:
		return gs.pawnMoves(from, p.Color)
	case Knight:
		return gs.offsetMoves(from, p.Color, knightDirs)
	case Bishop:
		return gs.slideMoves(from, p.Color, bishopDirs)
	case Rook:
		return gs.slideMoves(from, p.Color, rookDirs)
	case Queen:
		return append(gs.slideMoves(from, p.Color, bishopDirs), gs.slideMoves(from, p.Color, rookDirs)...)
	case King:
		return gs.kingMoves(from, p.Color)
	}
	return nil
}

func promotionRow(color Color) int {
	if color == White {
		return 0
	}
	return 7
}

func startingPawnRow(color Color) int {
	if color == White {
		return 6
	}
	return 1
}

// pawnMove attaches the fixed Queen promotion to moves reaching the far rank.
func pawnMove(from, to Square, color Color, flag MoveFlag) Move {
	m := Move{From: from, To: to, Flag: flag}
	if to.Row == promotionRow(color) {
		m.Promotion = Queen
	}
	return m
}

func (gs *GameState) pawnMoves(from Square, color Color) []Move {
	moves := []Move{}
	dir := pawnAdvanceDir(color)

	// Forward one, and two from the starting rank when both squares are open.
	oneAhead := Square{Row: from.Row + dir, Col: from.Col}
	if boundaryCheck(oneAhead) && gs.Board.pieceAt(oneAhead).IsEmpty() {
		moves = append(moves, pawnMove(from, oneAhead, color, FlagNone))
		twoAhead := Square{Row: from.Row + 2*dir, Col: from.Col}
		if from.Row == startingPawnRow(color) && gs.Board.pieceAt(twoAhead).IsEmpty() {
			moves = append(moves, pawnMove(from, twoAhead, color, FlagNone))
		}
	}

	// Diagonal captures, including en passant onto the skipped square.
	for _, dc := range []int{-1, 1} {
		diag := Square{Row: from.Row + dir, Col: from.Col + dc}
		if !boundaryCheck(diag) {
			continue
		}
		target := gs.Board.pieceAt(diag)
		if !target.IsEmpty() && target.Color != color {
			moves = append(moves, pawnMove(from, diag, color, FlagNone))
		}
		if gs.EnPassant != nil && *gs.EnPassant == diag {
			moves = append(moves, pawnMove(from, diag, color, FlagEnPassant))
		}
	}
	return moves
}

func (gs *GameState) offsetMoves(from Square, color Color, dirs []Square) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		to := Square{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		if !boundaryCheck(to) {
			continue
		}
		target := gs.Board.pieceAt(to)
		if target.IsEmpty() || target.Color != color {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func (gs *GameState) slideMoves(from Square, color Color, dirs []Square) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		to := Square{Row: from.Row + dir.Row, Col: from.Col + dir.Col}
		for boundaryCheck(to) {
			target := gs.Board.pieceAt(to)
			if target.IsEmpty() {
				moves = append(moves, Move{From: from, To: to})
			} else {
				if target.Color != color {
					moves = append(moves, Move{From: from, To: to})
				}
				break
			}
			to = Square{Row: to.Row + dir.Row, Col: to.Col + dir.Col}
		}
	}
	return moves
}

func (gs *GameState) kingMoves(from Square, color Color) []Move {
	moves := gs.offsetMoves(from, color, kingDirs)

	// Castling candidates. The king may not castle out of check, and the
	// square it passes through may not be attacked; landing in check is
	// rejected by the legality filter like any other king move.
	if gs.InCheck {
		return moves
	}
	row := from.Row
	opponent := color.Opponent()
	if gs.Castling.kingside(color) && gs.homeRookPresent(color, Square{Row: row, Col: 7}) {
		if gs.Board[row][5].IsEmpty() && gs.Board[row][6].IsEmpty() &&
			!gs.Board.isSquareAttacked(opponent, Square{Row: row, Col: 5}) {
			moves = append(moves, Move{From: from, To: Square{Row: row, Col: 6}, Flag: FlagCastleKingside})
		}
	}
	if gs.Castling.queenside(color) && gs.homeRookPresent(color, Square{Row: row, Col: 0}) {
		if gs.Board[row][1].IsEmpty() && gs.Board[row][2].IsEmpty() && gs.Board[row][3].IsEmpty() &&
			!gs.Board.isSquareAttacked(opponent, Square{Row: row, Col: 3}) {
			moves = append(moves, Move{From: from, To: Square{Row: row, Col: 2}, Flag: FlagCastleQueenside})
		}
	}
	return moves
}

func (gs *GameState) homeRookPresent(color Color, sq Square) bool {
	p := gs.Board.pieceAt(sq)
	return p.Type == Rook && p.Color == color
}
