package model

import (
	"fmt"

	"golang.org/x/exp/slices"
)

var (
	whiteRookHomeKingside  = Square{Row: 7, Col: 7}
	whiteRookHomeQueenside = Square{Row: 7, Col: 0}
	blackRookHomeKingside  = Square{Row: 0, Col: 7}
	blackRookHomeQueenside = Square{Row: 0, Col: 0}
)

// Apply commits a move. The move must describe an entry of the current
// legal-move list; anything else is rejected so a bad caller can never
// corrupt the state. The requested promotion piece is ignored: promotion is
// fixed to Queen.
func (gs *GameState) Apply(m Move) error {
	legal := gs.LegalMoves()
	idx := slices.IndexFunc(legal, m.sameAction)
	if idx < 0 {
		return fmt.Errorf("move %s%s is not legal in the current position",
			m.From.getSquareNotation(), m.To.getSquareNotation())
	}
	gs.applyCore(legal[idx])
	gs.History = append(gs.History, gs.Board)
	return nil
}

// applyCore performs the board mutation and turn bookkeeping. Effect order
// matters: the captured piece is resolved before the board changes, rights
// are revoked before the piece lands, and en passant/halfmove/side-to-move
// are refreshed last.
func (gs *GameState) applyCore(m Move) {
	mover := gs.ToMove
	piece := gs.Board.pieceAt(m.From)
	movedPawn := piece.Type == Pawn

	// 1. Resolve the captured piece. For en passant the victim sits beside
	// the origin rank, not on the destination square.
	var captured Piece
	if m.Flag == FlagEnPassant {
		victim := Square{Row: m.From.Row, Col: m.To.Col}
		captured = gs.Board.pieceAt(victim)
		gs.Board.clearSquare(victim)
	} else {
		captured = gs.Board.pieceAt(m.To)
	}

	// 2. Castling relocates the rook in the same step as the king's move.
	switch m.Flag {
	case FlagCastleKingside:
		rookFrom := Square{Row: m.From.Row, Col: 7}
		rookTo := Square{Row: m.From.Row, Col: 5}
		gs.Board.setPiece(rookTo, gs.Board.pieceAt(rookFrom))
		gs.Board.clearSquare(rookFrom)
	case FlagCastleQueenside:
		rookFrom := Square{Row: m.From.Row, Col: 0}
		rookTo := Square{Row: m.From.Row, Col: 3}
		gs.Board.setPiece(rookTo, gs.Board.pieceAt(rookFrom))
		gs.Board.clearSquare(rookFrom)
	}

	// 3. Revoke castling rights.
	switch piece.Type {
	case King:
		gs.Castling.clearAll(mover)
	case Rook:
		switch m.From {
		case whiteRookHomeKingside:
			if mover == White {
				gs.Castling.clearKingside(White)
			}
		case whiteRookHomeQueenside:
			if mover == White {
				gs.Castling.clearQueenside(White)
			}
		case blackRookHomeKingside:
			if mover == Black {
				gs.Castling.clearKingside(Black)
			}
		case blackRookHomeQueenside:
			if mover == Black {
				gs.Castling.clearQueenside(Black)
			}
		}
	}

	// Capturing a rook on its home square kills that right too.
	if captured.Type == Rook {
		switch {
		case m.To == whiteRookHomeKingside && captured.Color == White:
			gs.Castling.clearKingside(White)
		case m.To == whiteRookHomeQueenside && captured.Color == White:
			gs.Castling.clearQueenside(White)
		case m.To == blackRookHomeKingside && captured.Color == Black:
			gs.Castling.clearKingside(Black)
		case m.To == blackRookHomeQueenside && captured.Color == Black:
			gs.Castling.clearQueenside(Black)
		}
	}

	// 4/5. Promotion, then move the piece and clear the origin.
	if movedPawn && m.To.Row == promotionRow(mover) {
		piece = Piece{Type: Queen, Color: mover}
	}
	gs.Board.setPiece(m.To, piece)
	gs.Board.clearSquare(m.From)

	// 6. A two-square pawn advance arms en passant for exactly one reply.
	if movedPawn && (m.To.Row-m.From.Row == 2 || m.From.Row-m.To.Row == 2) {
		gs.EnPassant = &Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
	} else {
		gs.EnPassant = nil
	}

	// 7. Halfmove clock: reset on captures and pawn moves.
	if movedPawn || !captured.IsEmpty() {
		gs.Halfmove = 0
	} else {
		gs.Halfmove++
	}

	// 8. Flip the turn and recompute the derived check flag.
	gs.ToMove = mover.Opponent()
	if gs.ToMove == White {
		gs.MoveNumber++
	}
	gs.InCheck = gs.Board.isKingInCheck(gs.ToMove)
}
