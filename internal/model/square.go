package model

import "fmt"

// Square addresses the board by row and column. Row 0 is Black's back rank,
// so White pawns move toward decreasing rows.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) getSquareNotation() string {
	return fmt.Sprintf("%c%d", s.Col+'a', 8-s.Row)
}

func (s Square) getFileNotation() string {
	return fmt.Sprintf("%c", s.Col+'a')
}

func squareFromNotation(text string) (Square, error) {
	if len(text) != 2 || text[0] < 'a' || text[0] > 'h' || text[1] < '1' || text[1] > '8' {
		return Square{}, fmt.Errorf("invalid square %q", text)
	}
	return Square{Row: 8 - int(text[1]-'0'), Col: int(text[0] - 'a')}, nil
}

func boundaryCheck(s Square) bool {
	return s.Col >= 0 && s.Col < 8 && s.Row >= 0 && s.Row < 8
}
