package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// Piece is a value; the zero Piece means an empty square.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

func (p Piece) fenChar() byte {
	var ch byte
	switch p.Type {
	case King:
		ch = 'k'
	case Queen:
		ch = 'q'
	case Rook:
		ch = 'r'
	case Bishop:
		ch = 'b'
	case Knight:
		ch = 'n'
	case Pawn:
		ch = 'p'
	default:
		return '?'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func pieceFromFENChar(ch rune) Piece {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	switch ch {
	case 'k':
		return Piece{Type: King, Color: color}
	case 'q':
		return Piece{Type: Queen, Color: color}
	case 'r':
		return Piece{Type: Rook, Color: color}
	case 'b':
		return Piece{Type: Bishop, Color: color}
	case 'n':
		return Piece{Type: Knight, Color: color}
	case 'p':
		return Piece{Type: Pawn, Color: color}
	}
	return Piece{}
}
