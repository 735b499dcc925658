package pod

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	MinRoster = 3
	MaxRoster = 4

	// ChampionshipRound is the tournament_round stored on the final pod.
	ChampionshipRound = 5
)

var (
	ErrUnknownStatus    = errors.New("unknown pod status")
	ErrUnknownResult    = errors.New("unknown participant result")
	ErrRosterSize       = errors.New("roster size must be between 3 and 4")
	ErrDuplicatePlayer  = errors.New("player appears more than once in roster")
	ErrMultipleWinners  = errors.New("more than one participant reported a win")
	ErrInvalidTurnOrder = errors.New("turn order must be a permutation of 1..N")
)

// Status is the confirmation lifecycle of a pod.
type Status string

const (
	StatusOpen     Status = "open"
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusComplete Status = "complete"
)

func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusOpen, StatusActive, StatusPending, StatusComplete:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// Terminal reports whether the pod no longer blocks phase transitions.
func (s Status) Terminal() bool {
	return s == StatusComplete
}

// Result is a participant outcome. The zero value means not reported yet.
// A pod-level result only ever holds ResultWin, ResultDraw or ResultNone.
type Result string

const (
	ResultNone         Result = ""
	ResultWin          Result = "win"
	ResultLoss         Result = "loss"
	ResultDraw         Result = "draw"
	ResultDisqualified Result = "disqualified"
)

func ParseResult(raw string) (Result, error) {
	switch r := Result(strings.ToLower(strings.TrimSpace(raw))); r {
	case ResultNone, ResultWin, ResultLoss, ResultDraw, ResultDisqualified:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownResult, raw)
	}
}

type Pod struct {
	ID                 string
	LeagueID           string
	SessionID          string
	CreatorID          string
	Status             Status
	Result             Result
	IsTournamentGame   bool
	IsChampionshipGame bool
	TournamentRound    int
	Published          bool
	Deleted            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Participants holds every row for the pod, soft-deleted ones included.
	Participants []Participant
}

type Participant struct {
	PodID     string
	PlayerID  string
	Result    Result
	Confirmed bool
	TurnOrder int
	EloChange int
	EloBefore int
	Deleted   bool
}

// Active returns the non-deleted participants ordered by turn order.
func (p Pod) Active() []Participant {
	out := make([]Participant, 0, len(p.Participants))
	for _, item := range p.Participants {
		if item.Deleted {
			continue
		}
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b Participant) int { return a.TurnOrder - b.TurnOrder })
	return out
}

// Participant looks up a non-deleted participant by player id.
func (p Pod) Participant(playerID string) (Participant, bool) {
	for _, item := range p.Participants {
		if item.PlayerID == playerID && !item.Deleted {
			return item, true
		}
	}
	return Participant{}, false
}

func (p Pod) HasPlayer(playerID string) bool {
	_, ok := p.Participant(playerID)
	return ok
}

// IsDraft reports whether the pod is an unpublished tournament pod.
func (p Pod) IsDraft() bool {
	return p.IsTournamentGame && !p.Published
}

func (p Pod) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("pod id is required")
	}
	if strings.TrimSpace(p.LeagueID) == "" {
		return fmt.Errorf("pod league id is required")
	}
	if _, err := ParseStatus(string(p.Status)); err != nil {
		return err
	}
	switch p.Result {
	case ResultNone, ResultWin, ResultDraw:
	default:
		return fmt.Errorf("%w: pod result %q", ErrUnknownResult, p.Result)
	}

	active := p.Active()
	if p.Status != StatusOpen {
		if err := ValidateRoster(active); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRoster checks size, uniqueness and seating of a full roster.
func ValidateRoster(participants []Participant) error {
	if len(participants) < MinRoster || len(participants) > MaxRoster {
		return fmt.Errorf("%w: got %d", ErrRosterSize, len(participants))
	}
	seen := make(map[string]struct{}, len(participants))
	seats := make([]bool, len(participants)+1)
	for _, item := range participants {
		if _, ok := seen[item.PlayerID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, item.PlayerID)
		}
		seen[item.PlayerID] = struct{}{}
		if item.TurnOrder < 1 || item.TurnOrder > len(participants) || seats[item.TurnOrder] {
			return fmt.Errorf("%w: player %s has turn order %d", ErrInvalidTurnOrder, item.PlayerID, item.TurnOrder)
		}
		seats[item.TurnOrder] = true
	}
	return nil
}

// Reseat renumbers turn orders to 1..N keeping the current relative order.
func Reseat(participants []Participant) []Participant {
	out := slices.Clone(participants)
	slices.SortStableFunc(out, func(a, b Participant) int { return a.TurnOrder - b.TurnOrder })
	for i := range out {
		out[i].TurnOrder = i + 1
	}
	return out
}

// Outcome derives the pod-level result from its participants: draw if anyone
// drew, win otherwise. More than one winner is rejected.
func Outcome(participants []Participant) (Result, error) {
	winners := 0
	drew := false
	for _, item := range participants {
		switch item.Result {
		case ResultWin:
			winners++
		case ResultDraw:
			drew = true
		}
	}
	if winners > 1 {
		return ResultNone, fmt.Errorf("%w: %d winners", ErrMultipleWinners, winners)
	}
	if drew {
		return ResultDraw, nil
	}
	return ResultWin, nil
}

// AllConfirmed reports whether every given participant confirmed.
func AllConfirmed(participants []Participant) bool {
	if len(participants) == 0 {
		return false
	}
	for _, item := range participants {
		if !item.Confirmed {
			return false
		}
	}
	return true
}

// Winners returns the participants holding a win.
func Winners(participants []Participant) []Participant {
	out := make([]Participant, 0, 1)
	for _, item := range participants {
		if item.Result == ResultWin {
			out = append(out, item)
		}
	}
	return out
}
