package service

import (
	"testing"

	"github.com/videochess/videochess-backend/internal/chooser"
	"github.com/videochess/videochess-backend/internal/model"
	"github.com/videochess/videochess-backend/internal/store"
)

func newTestManager(t *testing.T) *GameManager {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewGameManager(st, func(string) chooser.Chooser {
		return chooser.FirstMove{}
	})
}

func TestCreateGameAssignsDistinctIDs(t *testing.T) {
	gm := newTestManager(t)

	id1, err := gm.CreateGame(model.GameConfig{})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	id2, err := gm.CreateGame(model.GameConfig{})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if id1 == "" || id1 == id2 {
		t.Errorf("ids %q and %q should be distinct and non-empty", id1, id2)
	}
	if _, err := gm.GetGame(id1); err != nil {
		t.Errorf("GetGame(%q): %v", id1, err)
	}
}

func TestGetGameUnknownID(t *testing.T) {
	gm := newTestManager(t)
	if _, err := gm.GetGame("nope"); err == nil {
		t.Error("expected an error for an unknown game id")
	}
	if _, err := gm.GetSnapshot("nope"); err == nil {
		t.Error("expected an error for an unknown game id")
	}
	if _, err := gm.GameLog("nope"); err == nil {
		t.Error("expected an error for an unknown game id")
	}
}

func TestStepGameAdvancesOnePly(t *testing.T) {
	gm := newTestManager(t)
	id, err := gm.CreateGame(model.GameConfig{})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	record, err := gm.StepGame(id)
	if err != nil {
		t.Fatalf("StepGame: %v", err)
	}
	if record.Ply != 1 || record.Player != model.White {
		t.Errorf("record = %+v, want white ply 1", record)
	}
	// FirstMove always plays the head of the list; from the start position
	// that is the a2 pawn's single advance.
	if record.Action != "a3" {
		t.Errorf("action = %q, want a3", record.Action)
	}

	snap, err := gm.GetSnapshot(id)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if snap.ToMove != model.Black || snap.Ply != 1 {
		t.Errorf("snapshot = %+v, want black to move at ply 1", snap)
	}
}

func TestStepGamePersistsTurns(t *testing.T) {
	gm := newTestManager(t)
	id, err := gm.CreateGame(model.GameConfig{MaxTurns: 4})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	for i := 0; i < 4; i++ {
		if _, err := gm.StepGame(id); err != nil {
			t.Fatalf("StepGame %d: %v", i+1, err)
		}
	}

	log, err := gm.GameLog(id)
	if err != nil {
		t.Fatalf("GameLog: %v", err)
	}
	if len(log) != 4 {
		t.Fatalf("log has %d records, want 4", len(log))
	}
	for i, rec := range log {
		if rec.Ply != i+1 {
			t.Errorf("record %d has ply %d, want %d", i, rec.Ply, i+1)
		}
	}
}

func TestStepGameRespectsTurnCap(t *testing.T) {
	gm := newTestManager(t)
	id, err := gm.CreateGame(model.GameConfig{MaxTurns: 2})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := gm.StepGame(id); err != nil {
			t.Fatalf("StepGame %d: %v", i+1, err)
		}
	}
	if _, err := gm.StepGame(id); err == nil {
		t.Error("StepGame past the turn cap should fail")
	}
}

func TestStartGameIsOneShot(t *testing.T) {
	gm := newTestManager(t)
	id, err := gm.CreateGame(model.GameConfig{MaxTurns: 2})
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if err := gm.StartGame(id); err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if err := gm.StartGame(id); err == nil {
		t.Error("second StartGame should fail")
	}
	if err := gm.StartGame("nope"); err == nil {
		t.Error("StartGame for an unknown game should fail")
	}
}
