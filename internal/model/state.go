package model

// CastlingRights tracks per-color kingside/queenside eligibility. Rights are
// monotonic: the applier only ever clears them.
type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

func newCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

func (cr CastlingRights) kingside(c Color) bool {
	if c == White {
		return cr.WhiteKingside
	}
	return cr.BlackKingside
}

func (cr CastlingRights) queenside(c Color) bool {
	if c == White {
		return cr.WhiteQueenside
	}
	return cr.BlackQueenside
}

func (cr *CastlingRights) clearAll(c Color) {
	cr.clearKingside(c)
	cr.clearQueenside(c)
}

func (cr *CastlingRights) clearKingside(c Color) {
	if c == White {
		cr.WhiteKingside = false
	} else {
		cr.BlackKingside = false
	}
}

func (cr *CastlingRights) clearQueenside(c Color) {
	if c == White {
		cr.WhiteQueenside = false
	} else {
		cr.BlackQueenside = false
	}
}

// String renders the rights in FEN form ("KQkq", or "-" when none remain).
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingside {
		s += "K"
	}
	if cr.WhiteQueenside {
		s += "Q"
	}
	if cr.BlackKingside {
		s += "k"
	}
	if cr.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// GameState is the single mutable entity of the engine: the board plus the
// turn bookkeeping that special-move rules depend on. It is created once per
// game and mutated move by move through Apply.
type GameState struct {
	Board      Board
	ToMove     Color
	Castling   CastlingRights
	EnPassant  *Square
	Halfmove   int
	MoveNumber int
	InCheck    bool
	History    []Board
}

func NewGameState() *GameState {
	return &GameState{
		Board:      newBoard(),
		ToMove:     White,
		Castling:   newCastlingRights(),
		MoveNumber: 1,
	}
}

// Clone returns an independent copy; mutations to either side do not alias.
func (gs *GameState) Clone() *GameState {
	dup := *gs
	if gs.EnPassant != nil {
		ep := *gs.EnPassant
		dup.EnPassant = &ep
	}
	dup.History = make([]Board, len(gs.History))
	copy(dup.History, gs.History)
	return &dup
}

// Repetitions counts how many past positions equal the current board. The
// count is tracked for the threefold rule but never consulted to end a game;
// that decision stays with the owning game loop.
func (gs *GameState) Repetitions() int {
	n := 0
	for _, past := range gs.History {
		if past == gs.Board {
			n++
		}
	}
	return n
}

func (gs *GameState) EnPassantNotation() string {
	if gs.EnPassant == nil {
		return ""
	}
	return gs.EnPassant.getSquareNotation()
}
