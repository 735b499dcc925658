package league

import (
	"errors"
	"testing"
)

func TestSettingsWithDefaults(t *testing.T) {
	t.Run("empty settings use defaults", func(t *testing.T) {
		got := Settings{}.WithDefaults()
		want := Scoring{
			PointsPerWin:                   4,
			PointsPerLoss:                  1,
			PointsPerDraw:                  1,
			TournamentWinPoints:            4,
			TournamentNonWinPoints:         1,
			TournamentDQPoints:             0,
			TournamentQualificationPercent: 75,
		}
		if got != want {
			t.Fatalf("unexpected scoring: got=%+v want=%+v", got, want)
		}
	})

	t.Run("explicit zero is kept for points", func(t *testing.T) {
		zero := 0
		got := Settings{PointsPerLoss: &zero, TournamentQualificationPercent: &zero}.WithDefaults()
		if got.PointsPerLoss != 0 {
			t.Fatalf("expected points per loss 0, got %d", got.PointsPerLoss)
		}
		if got.TournamentQualificationPercent != DefaultTournamentQualificationPercent {
			t.Fatalf("expected default qualification percent, got %d", got.TournamentQualificationPercent)
		}
	})
}

func TestParsePhase(t *testing.T) {
	cases := map[string]Phase{
		"regular_season": PhaseRegularSeason,
		" Tournament ":   PhaseTournament,
		"completed":      PhaseCompleted,
		"":               PhaseRegularSeason,
	}
	for raw, want := range cases {
		got, err := ParsePhase(raw)
		if err != nil {
			t.Fatalf("parse phase %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse phase %q: got=%s want=%s", raw, got, want)
		}
	}

	if _, err := ParsePhase("playoffs"); !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("expected ErrUnknownPhase, got %v", err)
	}
}
