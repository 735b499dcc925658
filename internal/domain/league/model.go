package league

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownPhase = errors.New("unknown league phase")

// Phase is the season stage of a league. Transitions only move forward,
// except for an explicit tournament reset.
type Phase string

const (
	PhaseRegularSeason Phase = "regular_season"
	PhaseTournament    Phase = "tournament"
	PhaseCompleted     Phase = "completed"
)

func ParsePhase(raw string) (Phase, error) {
	switch p := Phase(strings.ToLower(strings.TrimSpace(raw))); p {
	case PhaseRegularSeason, PhaseTournament, PhaseCompleted:
		return p, nil
	case "":
		return PhaseRegularSeason, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPhase, raw)
	}
}

const (
	DefaultPointsPerWin                   = 4
	DefaultPointsPerLoss                  = 1
	DefaultPointsPerDraw                  = 1
	DefaultTournamentWinPoints            = 4
	DefaultTournamentNonWinPoints         = 1
	DefaultTournamentDQPoints             = 0
	DefaultTournamentQualificationPercent = 75
)

// Settings mirrors the nullable scoring columns of a league.
type Settings struct {
	PointsPerWin                   *int
	PointsPerLoss                  *int
	PointsPerDraw                  *int
	TournamentWinPoints            *int
	TournamentNonWinPoints         *int
	TournamentDQPoints             *int
	TournamentQualificationPercent *int
}

// Scoring is Settings with every missing value resolved to its default.
type Scoring struct {
	PointsPerWin                   int
	PointsPerLoss                  int
	PointsPerDraw                  int
	TournamentWinPoints            int
	TournamentNonWinPoints         int
	TournamentDQPoints             int
	TournamentQualificationPercent int
}

func (s Settings) WithDefaults() Scoring {
	return Scoring{
		PointsPerWin:                   valueOr(s.PointsPerWin, DefaultPointsPerWin),
		PointsPerLoss:                  valueOr(s.PointsPerLoss, DefaultPointsPerLoss),
		PointsPerDraw:                  valueOr(s.PointsPerDraw, DefaultPointsPerDraw),
		TournamentWinPoints:            valueOr(s.TournamentWinPoints, DefaultTournamentWinPoints),
		TournamentNonWinPoints:         valueOr(s.TournamentNonWinPoints, DefaultTournamentNonWinPoints),
		TournamentDQPoints:             valueOr(s.TournamentDQPoints, DefaultTournamentDQPoints),
		TournamentQualificationPercent: positiveOr(s.TournamentQualificationPercent, DefaultTournamentQualificationPercent),
	}
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func positiveOr(v *int, fallback int) int {
	if v == nil || *v <= 0 {
		return fallback
	}
	return *v
}

// League is one recurring season of pods.
type League struct {
	ID                    string
	Name                  string
	Phase                 Phase
	Settings              Settings
	RegularSeasonLockedAt *time.Time
	TournamentCompletedAt *time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if _, err := ParsePhase(string(l.Phase)); err != nil {
		return err
	}

	return nil
}
