package model

// MoveFlag marks the special moves whose board effects go beyond moving one
// piece from origin to destination.
type MoveFlag string

const (
	FlagNone            MoveFlag = ""
	FlagEnPassant       MoveFlag = "enPassant"
	FlagCastleKingside  MoveFlag = "castleKingside"
	FlagCastleQueenside MoveFlag = "castleQueenside"
)

// Move is a value constructed by the generator and consumed once by Apply.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Flag      MoveFlag  `json:"flag,omitempty"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// sameAction reports whether two moves describe the same board action,
// ignoring the requested promotion piece (promotion is fixed to Queen on
// application regardless of what was asked for).
func (m Move) sameAction(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Flag == other.Flag
}

// TurnRecord is the per-turn log entry the game loop persists: what the
// chooser asked for, what was actually played, and the resulting position.
type TurnRecord struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Player     Color  `json:"player"`
	Action     string `json:"action"`
	Requested  string `json:"requested,omitempty"`
	Reasoning  string `json:"reasoning,omitempty"`
	Fallback   bool   `json:"fallback"`
	Fen        string `json:"fen"`
	Board      string `json:"board"`
	ThinkMs    int64  `json:"thinkMs"`
	Status     Status `json:"status"`
}
