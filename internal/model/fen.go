package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN serializes the state. Row 0 is Black's back rank, which is also the
// first rank FEN lists, so rows map straight through.
func (gs *GameState) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := gs.Board[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.fenChar())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if gs.ToMove == Black {
		side = "b"
	}
	ep := "-"
	if gs.EnPassant != nil {
		ep = gs.EnPassant.getSquareNotation()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		sb.String(), side, gs.Castling.String(), ep, gs.Halfmove, gs.MoveNumber)
}

// ParseFEN builds a GameState from a FEN string. The halfmove and fullmove
// fields may be omitted and default to 0 and 1. History starts empty; the
// check flag is recomputed for the side to move.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	gs := &GameState{MoveNumber: 1}
	for row, rank := range ranks {
		col := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p := pieceFromFENChar(ch)
			if p.IsEmpty() {
				return nil, fmt.Errorf("fen: invalid piece character %q", ch)
			}
			if col > 7 {
				return nil, fmt.Errorf("fen: rank %d overflows the board", 8-row)
			}
			gs.Board[row][col] = p
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("fen: rank %d has %d squares", 8-row, col)
		}
	}

	switch fields[1] {
	case "w":
		gs.ToMove = White
	case "b":
		gs.ToMove = Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				gs.Castling.WhiteKingside = true
			case 'Q':
				gs.Castling.WhiteQueenside = true
			case 'k':
				gs.Castling.BlackKingside = true
			case 'q':
				gs.Castling.BlackQueenside = true
			default:
				return nil, fmt.Errorf("fen: invalid castling field %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := squareFromNotation(fields[3])
		if err != nil {
			return nil, fmt.Errorf("fen: %w", err)
		}
		gs.EnPassant = &sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		gs.Halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("fen: invalid move number %q", fields[5])
		}
		gs.MoveNumber = n
	}

	gs.InCheck = gs.Board.isKingInCheck(gs.ToMove)
	return gs, nil
}
