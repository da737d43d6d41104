package model

import "testing"

func TestFoolsMateIsCheckmate(t *testing.T) {
	gs := NewGameState()
	for _, san := range []string{"f3", "e5", "g4", "Qh4"} {
		applySAN(t, gs, san)
	}
	if !gs.InCheck {
		t.Error("white should be in check after Qh4")
	}
	if got := gs.Status(); got != StatusCheckmate {
		t.Fatalf("Status() = %q, want %q", got, StatusCheckmate)
	}
	winner, ok := gs.Winner()
	if !ok || winner != Black {
		t.Errorf("Winner() = %q, %v, want %q, true", winner, ok, Black)
	}
}

func TestBackRankMateFromFEN(t *testing.T) {
	gs := mustParseFEN(t, "6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	applySAN(t, gs, "Ra8")
	if got := gs.Status(); got != StatusCheckmate {
		t.Fatalf("Status() = %q, want %q", got, StatusCheckmate)
	}
	if winner, ok := gs.Winner(); !ok || winner != White {
		t.Errorf("Winner() = %q, %v, want %q, true", winner, ok, White)
	}
}

func TestStalemateHasNoWinner(t *testing.T) {
	gs := mustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if gs.InCheck {
		t.Fatal("stalemated king must not be in check")
	}
	if moves := gs.LegalMoves(); len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %v", gs.EncodeMoves(moves))
	}
	if got := gs.Status(); got != StatusStalemate {
		t.Fatalf("Status() = %q, want %q", got, StatusStalemate)
	}
	if _, ok := gs.Winner(); ok {
		t.Error("stalemate must not report a winner")
	}
}

func TestOngoingGameHasNoWinner(t *testing.T) {
	gs := NewGameState()
	if got := gs.Status(); got != StatusOngoing {
		t.Fatalf("Status() = %q, want %q", got, StatusOngoing)
	}
	if _, ok := gs.Winner(); ok {
		t.Error("ongoing game must not report a winner")
	}
}
