package model

import "testing"

func TestHalfmoveClockResetsOnPawnMovesAndCaptures(t *testing.T) {
	gs := NewGameState()

	applySAN(t, gs, "e4")
	if gs.Halfmove != 0 {
		t.Errorf("pawn move should reset the clock, got %d", gs.Halfmove)
	}
	applySAN(t, gs, "Nc6")
	if gs.Halfmove != 1 {
		t.Errorf("quiet piece move should increment the clock, got %d", gs.Halfmove)
	}
	applySAN(t, gs, "Nf3")
	if gs.Halfmove != 2 {
		t.Errorf("expected clock 2, got %d", gs.Halfmove)
	}
	applySAN(t, gs, "e5")
	if gs.Halfmove != 0 {
		t.Errorf("pawn move should reset the clock, got %d", gs.Halfmove)
	}
	applySAN(t, gs, "Nxe5")
	if gs.Halfmove != 0 {
		t.Errorf("capture should reset the clock, got %d", gs.Halfmove)
	}
	applySAN(t, gs, "Nxe5")
	if gs.Halfmove != 0 {
		t.Errorf("capture should reset the clock, got %d", gs.Halfmove)
	}
}

func TestMoveNumberAdvancesAfterBlack(t *testing.T) {
	gs := NewGameState()
	if gs.MoveNumber != 1 {
		t.Fatalf("expected move number 1, got %d", gs.MoveNumber)
	}
	applySAN(t, gs, "e4")
	if gs.MoveNumber != 1 {
		t.Errorf("move number advanced after White's move: %d", gs.MoveNumber)
	}
	applySAN(t, gs, "e5")
	if gs.MoveNumber != 2 {
		t.Errorf("expected move number 2 after Black's reply, got %d", gs.MoveNumber)
	}
}

func TestPromotionAlwaysProducesQueen(t *testing.T) {
	gs := mustParseFEN(t, "8/P7/8/8/8/8/6k1/4K3 w - - 0 1")

	legal := gs.LegalMoves()
	promo, ok := gs.ResolveMove("a8", legal)
	if !ok {
		t.Fatalf("expected the promotion push a8 to be legal, got %v", gs.EncodeMoves(legal))
	}
	if promo.Promotion != Queen {
		t.Errorf("generator should fix promotion to Queen, got %v", promo.Promotion)
	}

	// Asking for a different piece changes nothing: the applier queens.
	requested := promo
	requested.Promotion = Knight
	if err := gs.Apply(requested); err != nil {
		t.Fatalf("applying the promotion failed: %v", err)
	}
	if p := gs.Board[0][0]; p.Type != Queen || p.Color != White {
		t.Errorf("expected a white queen on a8, found %+v", p)
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	gs := NewGameState()
	before := gs.Board

	// e2-e5 is no pawn move at all.
	err := gs.Apply(Move{From: Square{Row: 6, Col: 4}, To: Square{Row: 3, Col: 4}})
	if err == nil {
		t.Fatal("expected an error for an illegal move")
	}
	if gs.Board != before {
		t.Error("a rejected move must not mutate the board")
	}
	if gs.ToMove != White {
		t.Error("a rejected move must not flip the side to move")
	}
}

func TestHistoryGrowsWithEveryMove(t *testing.T) {
	gs := NewGameState()
	for i, san := range []string{"Nf3", "Nf6", "Ng1", "Ng8"} {
		applySAN(t, gs, san)
		if len(gs.History) != i+1 {
			t.Fatalf("expected %d history entries, got %d", i+1, len(gs.History))
		}
	}
	// Knights returned home: the current board matches the one after the
	// opening pair of moves was undone, giving one repetition.
	if reps := gs.Repetitions(); reps != 1 {
		t.Errorf("expected 1 repetition of the current position, got %d", reps)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	gs := NewGameState()
	dup := gs.Clone()

	applySAN(t, gs, "e4")
	if dup.Board == gs.Board {
		t.Error("mutating the original changed the clone")
	}
	if dup.ToMove != White {
		t.Errorf("clone side to move changed to %s", dup.ToMove)
	}
	if len(dup.History) != 0 {
		t.Errorf("clone history grew to %d", len(dup.History))
	}
}
