package model

import "strings"

// Board is a plain value so the legality filter can copy it by assignment.
type Board [8][8]Piece

func (b *Board) pieceAt(s Square) Piece {
	return b[s.Row][s.Col]
}

func (b *Board) setPiece(s Square, p Piece) {
	b[s.Row][s.Col] = p
}

func (b *Board) clearSquare(s Square) {
	b[s.Row][s.Col] = Piece{}
}

func newBoard() Board {
	var board Board
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range backRank {
		board[0][col] = Piece{Type: pt, Color: Black}
		board[7][col] = Piece{Type: pt, Color: White}
	}
	for col := 0; col < 8; col++ {
		board[1][col] = Piece{Type: Pawn, Color: Black}
		board[6][col] = Piece{Type: Pawn, Color: White}
	}
	return board
}

func (b *Board) kingSquare(color Color) (Square, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b[row][col]
			if p.Type == King && p.Color == color {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

var pieceSymbols = map[Piece]string{
	{Type: King, Color: White}:   "♔",
	{Type: Queen, Color: White}:  "♕",
	{Type: Rook, Color: White}:   "♖",
	{Type: Bishop, Color: White}: "♗",
	{Type: Knight, Color: White}: "♘",
	{Type: Pawn, Color: White}:   "♙",
	{Type: King, Color: Black}:   "♚",
	{Type: Queen, Color: Black}:  "♛",
	{Type: Rook, Color: Black}:   "♜",
	{Type: Bishop, Color: Black}: "♝",
	{Type: Knight, Color: Black}: "♞",
	{Type: Pawn, Color: Black}:   "♟",
}

// String renders the board as a text grid with file and rank labels, the way
// it is shown to the move chooser.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < 8; row++ {
		cells := make([]string, 0, 9)
		cells = append(cells, string(rune('0'+8-row)))
		for col := 0; col < 8; col++ {
			if b[row][col].IsEmpty() {
				cells = append(cells, ".")
			} else {
				cells = append(cells, pieceSymbols[b[row][col]])
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
