package model

import "testing"

func mustParseFEN(t *testing.T, fen string) *GameState {
	t.Helper()
	gs, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return gs
}

func TestStartingPositionLegalMoves(t *testing.T) {
	gs := NewGameState()
	legal := gs.LegalMoves()
	if len(legal) != 20 {
		t.Fatalf("initial position: expected 20 legal moves, got %d", len(legal))
	}

	pawnMoves, knightMoves := 0, 0
	for _, m := range legal {
		if m.Flag != FlagNone {
			t.Errorf("initial position generated special move %+v", m)
		}
		switch gs.Board.pieceAt(m.From).Type {
		case Pawn:
			pawnMoves++
		case Knight:
			knightMoves++
		default:
			t.Errorf("unexpected mover %v at %v", gs.Board.pieceAt(m.From).Type, m.From)
		}
		if !gs.Board.pieceAt(m.To).IsEmpty() {
			t.Errorf("initial position generated capture %+v", m)
		}
	}
	if pawnMoves != 16 || knightMoves != 4 {
		t.Errorf("expected 16 pawn and 4 knight moves, got %d and %d", pawnMoves, knightMoves)
	}
}

func TestSlidingPieceStopsAtBlockers(t *testing.T) {
	// White rook on a1: up the a-file until the black pawn on a4 (inclusive,
	// as a capture), and along the rank until its own king on e1 (excluded).
	gs := mustParseFEN(t, "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1")

	rookMoves := 0
	sawCapture := false
	for _, m := range gs.LegalMoves() {
		if gs.Board.pieceAt(m.From).Type != Rook {
			continue
		}
		rookMoves++
		if m.To == (Square{Row: 4, Col: 0}) {
			sawCapture = true
		}
		if m.To.Row < 4 && m.To.Col == 0 {
			t.Errorf("rook slid past the blocking pawn to %v", m.To)
		}
	}
	if rookMoves != 6 {
		t.Errorf("expected 6 rook moves (a2, a3, xa4, b1, c1, d1), got %d", rookMoves)
	}
	if !sawCapture {
		t.Error("expected the capture on a4 to be generated")
	}
}

func TestKnightJumpsOverPieces(t *testing.T) {
	gs := NewGameState()
	knightMoves := 0
	for _, m := range gs.LegalMoves() {
		if gs.Board.pieceAt(m.From).Type == Knight {
			knightMoves++
		}
	}
	// Both knights are boxed in by pawns yet still have two moves each.
	if knightMoves != 4 {
		t.Errorf("expected 4 knight moves from the start, got %d", knightMoves)
	}
}

func TestKingCannotLandOnOwnPiece(t *testing.T) {
	gs := NewGameState()
	for _, m := range gs.PseudoLegalMoves() {
		target := gs.Board.pieceAt(m.To)
		if !target.IsEmpty() && target.Color == gs.ToMove {
			t.Errorf("generated move onto own piece: %+v", m)
		}
	}
}

func TestRookCheckRestrictsKing(t *testing.T) {
	// Black rook on a1 gives check along the first rank. Every legal reply
	// must take the king off that rank.
	gs := mustParseFEN(t, "7k/8/8/8/8/8/8/r3K3 w - - 0 1")

	if !gs.InCheck {
		t.Fatal("expected White to be in check")
	}
	legal := gs.LegalMoves()
	if len(legal) != 3 {
		t.Fatalf("expected 3 legal moves (Kd2, Ke2, Kf2), got %d", len(legal))
	}
	for _, m := range legal {
		if m.To.Row == 7 {
			t.Errorf("move %+v stays on the attacked rank", m)
		}
	}
}

func TestLegalMovesNeverLeaveOwnKingAttacked(t *testing.T) {
	fens := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"7k/8/8/8/8/8/8/r3K3 w - - 0 1",
	}
	for _, fen := range fens {
		gs := mustParseFEN(t, fen)
		mover := gs.ToMove
		for _, m := range gs.LegalMoves() {
			next := gs.Clone()
			if err := next.Apply(m); err != nil {
				t.Fatalf("%s: applying %+v failed: %v", fen, m, err)
			}
			if next.Board.isKingInCheck(mover) {
				t.Errorf("%s: legal move %+v leaves the %s king attacked", fen, m, mover)
			}
		}
	}
}
