package chooser

import (
	"fmt"
	"strings"

	"github.com/videochess/videochess-backend/internal/model"
)

const chessPrompt = `You are playing VideoChess. Strictly follow standard chess rules including all special moves:

1. **Piece Movement**:
   - **King**: 1 square any direction. Castling: Move king 2 squares towards rook (O-O/O-O-O). Requirements:
     - King/rook never moved
     - No pieces between
     - King not in check, doesn't pass through/into check
   - **Queen**: Any direction, any distance
   - **Rook**: Horizontal/vertical, any distance
   - **Bishop**: Diagonal, any distance
   - **Knight**: L-shaped jump (2+1), can leap
   - **Pawn**:
     - Forward 1 (or 2 from start)
     - Capture diagonally
     - En passant: Capture pawn that moved 2 squares beside you
     - Promotion: Pawn reaching the 8th rank becomes a Queen

2. **Special Rules**:
   - **Check**: Must escape if king attacked
   - **Checkmate**: No legal moves while in check -> lose
   - **Stalemate**: No legal moves, not in check -> draw

3. **Notation**:
   - Squares: a1 to h8
   - Pieces: K, Q, R, B, N (pawns have no letter)
   - Castling: O-O (kingside), O-O-O (queenside)
   - Capture: 'x' (e.g., exd5)

Current Board:
%s

Game Status:
Player: %s | Turn: %d
Castling: %s | En Passant: %s
Check: %t
Legal Moves (SAN): %s

Pick exactly one move from the legal move list. Provide your output in JSON format with two keys: action and reasoning.
Example:
{"action": "e4", "reasoning": "Control the center early."}`

// BuildPrompt renders the full prompt for one turn. Exported so tests and
// alternative transports can reuse the exact prompt text.
func BuildPrompt(snap model.Snapshot) string {
	enPassant := snap.EnPassant
	if enPassant == "" {
		enPassant = "none"
	}
	return fmt.Sprintf(chessPrompt,
		snap.BoardText,
		snap.ToMove,
		snap.MoveNumber,
		snap.Castling,
		enPassant,
		snap.IsCheck,
		strings.Join(snap.LegalMoves, ", "),
	)
}
