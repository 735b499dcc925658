package pod

import (
	"errors"
	"testing"
)

func TestParseResult(t *testing.T) {
	for _, raw := range []string{"win", "LOSS", " draw ", "disqualified", ""} {
		if _, err := ParseResult(raw); err != nil {
			t.Fatalf("parse result %q: %v", raw, err)
		}
	}
	if _, err := ParseResult("forfeit"); !errors.Is(err, ErrUnknownResult) {
		t.Fatalf("expected ErrUnknownResult, got %v", err)
	}
	if _, err := ParseStatus("locked"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestOutcome(t *testing.T) {
	t.Run("single winner", func(t *testing.T) {
		got, err := Outcome([]Participant{{Result: ResultWin}, {Result: ResultLoss}, {Result: ResultLoss}})
		if err != nil {
			t.Fatalf("outcome: %v", err)
		}
		if got != ResultWin {
			t.Fatalf("expected win, got %q", got)
		}
	})

	t.Run("any draw makes a draw", func(t *testing.T) {
		got, err := Outcome([]Participant{{Result: ResultDraw}, {Result: ResultLoss}, {Result: ResultDraw}})
		if err != nil {
			t.Fatalf("outcome: %v", err)
		}
		if got != ResultDraw {
			t.Fatalf("expected draw, got %q", got)
		}
	})

	t.Run("two winners rejected", func(t *testing.T) {
		_, err := Outcome([]Participant{{Result: ResultWin}, {Result: ResultWin}, {Result: ResultLoss}})
		if !errors.Is(err, ErrMultipleWinners) {
			t.Fatalf("expected ErrMultipleWinners, got %v", err)
		}
	})
}

func TestValidateRoster(t *testing.T) {
	valid := []Participant{
		{PlayerID: "a", TurnOrder: 2},
		{PlayerID: "b", TurnOrder: 1},
		{PlayerID: "c", TurnOrder: 3},
	}
	if err := ValidateRoster(valid); err != nil {
		t.Fatalf("expected valid roster, got %v", err)
	}

	if err := ValidateRoster(valid[:2]); !errors.Is(err, ErrRosterSize) {
		t.Fatalf("expected ErrRosterSize, got %v", err)
	}

	dup := append([]Participant{}, valid...)
	dup[2].PlayerID = "a"
	if err := ValidateRoster(dup); !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("expected ErrDuplicatePlayer, got %v", err)
	}

	gap := append([]Participant{}, valid...)
	gap[2].TurnOrder = 4
	if err := ValidateRoster(gap); !errors.Is(err, ErrInvalidTurnOrder) {
		t.Fatalf("expected ErrInvalidTurnOrder, got %v", err)
	}
}

func TestActiveAndReseat(t *testing.T) {
	p := Pod{Participants: []Participant{
		{PlayerID: "a", TurnOrder: 3},
		{PlayerID: "b", TurnOrder: 1, Deleted: true},
		{PlayerID: "c", TurnOrder: 4},
		{PlayerID: "d", TurnOrder: 2},
	}}

	active := p.Active()
	if len(active) != 3 || active[0].PlayerID != "d" || active[2].PlayerID != "c" {
		t.Fatalf("unexpected active participants: %+v", active)
	}
	if p.HasPlayer("b") {
		t.Fatalf("deleted participant must not count as present")
	}

	seated := Reseat(active)
	for i, item := range seated {
		if item.TurnOrder != i+1 {
			t.Fatalf("expected turn order %d for %s, got %d", i+1, item.PlayerID, item.TurnOrder)
		}
	}
	if active[0].TurnOrder != 2 {
		t.Fatalf("reseat must not mutate its input")
	}
}
