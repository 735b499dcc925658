package tournament

import (
	"errors"
	"fmt"
	"slices"

	"github.com/garretthaima/escalation-league/internal/platform/random"
)

const (
	PodSize        = 4
	GamesPerPlayer = 4
)

var (
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrDuplicatePlayer  = errors.New("duplicate player")
)

// PlannedPod is one generated pod. PlayerIDs is in seating order: index i
// takes turn order i+1.
type PlannedPod struct {
	Round     int
	PlayerIDs []string
}

type Schedule struct {
	Pods          []PlannedPod
	TargetPods    int
	GamesByPlayer map[string]int
	// Uneven is set when the player count cannot fill TargetPods exactly.
	Uneven bool
}

// Mismatched lists players whose assigned game count differs from want.
func (s Schedule) Mismatched(want int) []string {
	out := make([]string, 0)
	for id, games := range s.GamesByPlayer {
		if games != want {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

func (s Schedule) Partial() bool {
	return len(s.Pods) < s.TargetPods
}

// Generator builds a schedule aiming for GamesPerPlayer games per player with
// repeat pairings kept to a minimum. The greedy pass can run short; callers
// check Partial and Mismatched.
type Generator struct {
	src            random.Source
	podSize        int
	gamesPerPlayer int
}

func NewGenerator(src random.Source) *Generator {
	if src == nil {
		src = random.NewCrypto()
	}
	return &Generator{src: src, podSize: PodSize, gamesPerPlayer: GamesPerPlayer}
}

// Generate expects playerIDs ordered by seed.
func (g *Generator) Generate(playerIDs []string) (Schedule, error) {
	n := len(playerIDs)
	if n < g.podSize {
		return Schedule{}, fmt.Errorf("%w: need %d, got %d", ErrNotEnoughPlayers, g.podSize, n)
	}
	seen := make(map[string]struct{}, n)
	for _, id := range playerIDs {
		if _, ok := seen[id]; ok {
			return Schedule{}, fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
		}
		seen[id] = struct{}{}
	}

	totalSlots := n * g.gamesPerPlayer
	schedule := Schedule{
		TargetPods:    totalSlots / g.podSize,
		GamesByPlayer: make(map[string]int, n),
		Uneven:        totalSlots%g.podSize != 0,
		Pods:          make([]PlannedPod, 0, totalSlots/g.podSize),
	}
	for _, id := range playerIDs {
		schedule.GamesByPlayer[id] = 0
	}

	pairings := Pairings{}
	for i := 0; i < schedule.TargetPods; i++ {
		members, ok := g.buildPod(playerIDs, schedule.GamesByPlayer, pairings)
		if !ok {
			break
		}

		pairings.Record(members)
		for _, id := range members {
			schedule.GamesByPlayer[id]++
		}

		seated := slices.Clone(members)
		random.Shuffle(g.src, seated)
		schedule.Pods = append(schedule.Pods, PlannedPod{
			Round:     RoundForPod(i, n),
			PlayerIDs: seated,
		})
	}

	return schedule, nil
}

// buildPod seeds the next pod with a player who has the fewest games so far,
// then adds the freshest remaining candidates one at a time.
func (g *Generator) buildPod(playerIDs []string, games map[string]int, pairings Pairings) ([]string, bool) {
	eligible := make([]string, 0, len(playerIDs))
	fewest := g.gamesPerPlayer
	for _, id := range playerIDs {
		if games[id] >= g.gamesPerPlayer {
			continue
		}
		eligible = append(eligible, id)
		fewest = min(fewest, games[id])
	}
	if len(eligible) < g.podSize {
		return nil, false
	}

	seeds := make([]string, 0, len(eligible))
	for _, id := range eligible {
		if games[id] == fewest {
			seeds = append(seeds, id)
		}
	}
	members := make([]string, 0, g.podSize)
	members = append(members, random.Pick(g.src, seeds))

	for len(members) < g.podSize {
		candidates := make([]string, 0, len(eligible))
		for _, id := range eligible {
			if !slices.Contains(members, id) {
				candidates = append(candidates, id)
			}
		}
		members = append(members, pickFreshest(g.src, candidates, members, games, pairings))
	}

	return members, true
}

// pickFreshest returns the candidate with the lowest repeat-pairing score,
// where each prior game adds a tenth of a pairing. Ties are broken randomly.
func pickFreshest(src random.Source, candidates, members []string, games map[string]int, pairings Pairings) string {
	best := make([]string, 0, len(candidates))
	bestScore := 0
	for _, id := range candidates {
		score := 10*pairings.Against(id, members) + games[id]
		switch {
		case len(best) == 0 || score < bestScore:
			best = append(best[:0], id)
			bestScore = score
		case score == bestScore:
			best = append(best, id)
		}
	}
	return random.Pick(src, best)
}

// RoundForPod numbers pods in blocks of ceil(playerCount/4). Some player
// counts leave the last round shorter than the others.
func RoundForPod(index, playerCount int) int {
	perRound := (playerCount + PodSize - 1) / PodSize
	if perRound <= 0 {
		return 1
	}
	return index/perRound + 1
}

// GroupFresh splits players into pods of the given sizes, preferring players
// who have met the fewest times. Used for ad-hoc pod suggestions.
func GroupFresh(src random.Source, players []string, sizes []int, pairings Pairings) [][]string {
	if src == nil {
		src = random.NewCrypto()
	}
	remaining := slices.Clone(players)
	random.Shuffle(src, remaining)

	out := make([][]string, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 || len(remaining) < size {
			break
		}
		members := []string{remaining[0]}
		remaining = remaining[1:]
		for len(members) < size {
			next := pickFreshest(src, remaining, members, nil, pairings)
			members = append(members, next)
			remaining = slices.DeleteFunc(remaining, func(id string) bool { return id == next })
		}
		out = append(out, members)
	}
	return out
}
