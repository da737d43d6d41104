package model

// Direction sets shared by move generation and attack detection. The two
// sides must stay in lockstep: a movement rule added to one belongs in the
// other as well.
var (
	rookDirs   = []Square{{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0}}
	bishopDirs = []Square{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	knightDirs = []Square{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
	kingDirs = []Square{
		{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0},
		{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1},
	}
)

// pawnAdvanceDir is the row delta a pawn of the given color moves by.
func pawnAdvanceDir(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

// isSquareAttacked reports whether any piece of attackingColor attacks the
// target square. Sliding rays stop at the first occupied square; knight,
// king and pawn attacks are fixed offsets.
func (b *Board) isSquareAttacked(attackingColor Color, target Square) bool {
	for _, dir := range rookDirs {
		cur := Square{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		for boundaryCheck(cur) {
			p := b.pieceAt(cur)
			if !p.IsEmpty() {
				if p.Color == attackingColor && (p.Type == Queen || p.Type == Rook) {
					return true
				}
				break
			}
			cur = Square{Row: cur.Row + dir.Row, Col: cur.Col + dir.Col}
		}
	}
	for _, dir := range bishopDirs {
		cur := Square{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		for boundaryCheck(cur) {
			p := b.pieceAt(cur)
			if !p.IsEmpty() {
				if p.Color == attackingColor && (p.Type == Queen || p.Type == Bishop) {
					return true
				}
				break
			}
			cur = Square{Row: cur.Row + dir.Row, Col: cur.Col + dir.Col}
		}
	}
	for _, dir := range knightDirs {
		cur := Square{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		if boundaryCheck(cur) {
			p := b.pieceAt(cur)
			if p.Type == Knight && p.Color == attackingColor {
				return true
			}
		}
	}
	for _, dir := range kingDirs {
		cur := Square{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		if boundaryCheck(cur) {
			p := b.pieceAt(cur)
			if p.Type == King && p.Color == attackingColor {
				return true
			}
		}
	}
	// A pawn attacks diagonally forward, so the attacker sits one row behind
	// the target relative to its own advance direction.
	pawnRow := target.Row - pawnAdvanceDir(attackingColor)
	for _, dc := range []int{-1, 1} {
		cur := Square{Row: pawnRow, Col: target.Col + dc}
		if boundaryCheck(cur) {
			p := b.pieceAt(cur)
			if p.Type == Pawn && p.Color == attackingColor {
				return true
			}
		}
	}
	return false
}

func (b *Board) isKingInCheck(color Color) bool {
	kingSq, ok := b.kingSquare(color)
	if !ok {
		// Only possible transiently inside the legality filter.
		return false
	}
	return b.isSquareAttacked(color.Opponent(), kingSq)
}
