package memory

import (
	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
)

const LeagueIDDemo = "demo-league-2026"

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:    LeagueIDDemo,
			Name:  "Escalation League Spring 2026",
			Phase: league.PhaseRegularSeason,
		},
	}
}

// SeedStandings enrolls eight demo players in the demo league.
func SeedStandings() []standing.Standing {
	users := []string{"ava", "ben", "cora", "dev", "eli", "fay", "gus", "hana"}
	out := make([]standing.Standing, 0, len(users))
	for _, userID := range users {
		out = append(out, standing.Standing{
			LeagueID:  LeagueIDDemo,
			UserID:    userID,
			IsActive:  true,
			EloRating: standing.StartingElo,
		})
	}
	return out
}

func NewSeededStore() *Store {
	return NewStore(SeedLeagues(), SeedStandings(), nil)
}
