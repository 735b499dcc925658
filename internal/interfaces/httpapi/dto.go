package httpapi

import (
	"context"
	"time"

	"github.com/garretthaima/escalation-league/internal/domain/league"
	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/domain/standing"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

type createPodRequest struct {
	SessionID      string   `json:"session_id" validate:"omitempty,max=64"`
	ParticipantIDs []string `json:"participant_ids" validate:"omitempty,max=4,dive,required"`
}

type declareResultRequest struct {
	Result string `json:"result" validate:"required,oneof=win loss draw disqualified"`
}

type rosterEntryRequest struct {
	PlayerID  string `json:"player_id" validate:"required"`
	Result    string `json:"result" validate:"omitempty,oneof=win loss draw disqualified"`
	Confirmed bool   `json:"confirmed"`
	TurnOrder int    `json:"turn_order" validate:"gte=0,lte=4"`
}

type replaceRosterRequest struct {
	Participants []rosterEntryRequest `json:"participants" validate:"required,min=3,max=4,dive"`
	Status       string               `json:"status" validate:"omitempty,oneof=open active pending complete"`
}

type addParticipantRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type updateParticipantResultRequest struct {
	Result string `json:"result" validate:"omitempty,oneof=win loss draw disqualified"`
}

type swapPlayersRequest struct {
	Pod1ID    string `json:"pod1_id" validate:"required"`
	Player1ID string `json:"player1_id" validate:"required"`
	Pod2ID    string `json:"pod2_id" validate:"required"`
	Player2ID string `json:"player2_id" validate:"required"`
}

type resetTournamentRequest struct {
	Confirmation string `json:"confirmation" validate:"required"`
}

type suggestPodsRequest struct {
	AttendeeIDs []string `json:"attendee_ids" validate:"required,min=1,dive,required"`
}

type participantDTO struct {
	PlayerID  string `json:"playerId"`
	Result    string `json:"result,omitempty"`
	Confirmed bool   `json:"confirmed"`
	TurnOrder int    `json:"turnOrder,omitempty"`
	EloChange int    `json:"eloChange"`
	EloBefore int    `json:"eloBefore,omitempty"`
}

type podDTO struct {
	ID                 string           `json:"id"`
	LeagueID           string           `json:"leagueId"`
	SessionID          string           `json:"sessionId,omitempty"`
	CreatorID          string           `json:"creatorId"`
	Status             string           `json:"status"`
	Result             string           `json:"result,omitempty"`
	IsTournamentGame   bool             `json:"isTournamentGame"`
	IsChampionshipGame bool             `json:"isChampionshipGame"`
	TournamentRound    int              `json:"tournamentRound,omitempty"`
	Published          bool             `json:"published"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	Participants       []participantDTO `json:"participants"`
}

type scoringDTO struct {
	PointsPerWin                   int `json:"pointsPerWin"`
	PointsPerLoss                  int `json:"pointsPerLoss"`
	PointsPerDraw                  int `json:"pointsPerDraw"`
	TournamentWinPoints            int `json:"tournamentWinPoints"`
	TournamentNonWinPoints         int `json:"tournamentNonWinPoints"`
	TournamentDQPoints             int `json:"tournamentDqPoints"`
	TournamentQualificationPercent int `json:"tournamentQualificationPercent"`
}

type leagueDTO struct {
	ID                    string     `json:"id"`
	Name                  string     `json:"name"`
	Phase                 string     `json:"phase"`
	Scoring               scoringDTO `json:"scoring"`
	RegularSeasonLockedAt *time.Time `json:"regularSeasonLockedAt,omitempty"`
	TournamentCompletedAt *time.Time `json:"tournamentCompletedAt,omitempty"`
}

type standingDTO struct {
	Rank                  int    `json:"rank,omitempty"`
	UserID                string `json:"userId"`
	IsActive              bool   `json:"isActive"`
	Disqualified          bool   `json:"disqualified"`
	Wins                  int    `json:"wins"`
	Losses                int    `json:"losses"`
	Draws                 int    `json:"draws"`
	TotalPoints           int    `json:"totalPoints"`
	EloRating             int    `json:"eloRating"`
	FinalsQualified       bool   `json:"finalsQualified"`
	TournamentSeed        int    `json:"tournamentSeed,omitempty"`
	TournamentPoints      int    `json:"tournamentPoints"`
	TournamentWins        int    `json:"tournamentWins"`
	TournamentNonWins     int    `json:"tournamentNonWins"`
	TournamentDQs         int    `json:"tournamentDqs"`
	TournamentGames       int    `json:"tournamentGames,omitempty"`
	ChampionshipQualified bool   `json:"championshipQualified"`
	IsChampion            bool   `json:"isChampion"`
}

type qualificationDTO struct {
	LeagueID  string        `json:"leagueId"`
	Eligible  int           `json:"eligible"`
	Spots     int           `json:"spots"`
	Qualified []standingDTO `json:"qualified"`
}

type generatePodsDTO struct {
	Pods       []podDTO `json:"pods"`
	TargetPods int      `json:"targetPods"`
	Mismatched []string `json:"mismatched,omitempty"`
}

type podStatsDTO struct {
	Total        int     `json:"total"`
	Completed    int     `json:"completed"`
	Pending      int     `json:"pending"`
	Qualifying   int     `json:"qualifying"`
	Drafts       int     `json:"drafts"`
	Championship *podDTO `json:"championship,omitempty"`
}

type tournamentStatusDTO struct {
	League    leagueDTO     `json:"league"`
	Qualified []standingDTO `json:"qualified"`
	Pods      podStatsDTO   `json:"pods"`
}

type championshipQualifiersDTO struct {
	AllQualifyingComplete bool          `json:"allQualifyingComplete"`
	IncompleteCount       int           `json:"incompleteCount"`
	Qualifiers            []standingDTO `json:"qualifiers"`
}

type pairCountDTO struct {
	PlayerA string `json:"playerA"`
	PlayerB string `json:"playerB"`
	Games   int    `json:"games"`
}

type headToHeadDTO struct {
	OpponentID string `json:"opponentId"`
	Games      int    `json:"games"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
}

type opponentSummaryDTO struct {
	PlayerID  string          `json:"playerId"`
	Opponents []headToHeadDTO `json:"opponents"`
	Nemesis   *headToHeadDTO  `json:"nemesis,omitempty"`
	Victim    *headToHeadDTO  `json:"victim,omitempty"`
}

type podSuggestionDTO struct {
	Pods     [][]string `json:"pods"`
	Leftover []string   `json:"leftover"`
}

func podToDTO(ctx context.Context, v pod.Pod) podDTO {
	ctx, span := startSpan(ctx, "httpapi.podToDTO")
	defer span.End()

	active := v.Active()
	participants := make([]participantDTO, 0, len(active))
	for _, item := range active {
		participants = append(participants, participantDTO{
			PlayerID:  item.PlayerID,
			Result:    string(item.Result),
			Confirmed: item.Confirmed,
			TurnOrder: item.TurnOrder,
			EloChange: item.EloChange,
			EloBefore: item.EloBefore,
		})
	}

	return podDTO{
		ID:                 v.ID,
		LeagueID:           v.LeagueID,
		SessionID:          v.SessionID,
		CreatorID:          v.CreatorID,
		Status:             string(v.Status),
		Result:             string(v.Result),
		IsTournamentGame:   v.IsTournamentGame,
		IsChampionshipGame: v.IsChampionshipGame,
		TournamentRound:    v.TournamentRound,
		Published:          v.Published,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
		Participants:       participants,
	}
}

func podsToDTO(ctx context.Context, items []pod.Pod) []podDTO {
	out := make([]podDTO, 0, len(items))
	for _, item := range items {
		out = append(out, podToDTO(ctx, item))
	}
	return out
}

func leagueToDTO(v league.League) leagueDTO {
	scoring := v.Settings.WithDefaults()
	return leagueDTO{
		ID:    v.ID,
		Name:  v.Name,
		Phase: string(v.Phase),
		Scoring: scoringDTO{
			PointsPerWin:                   scoring.PointsPerWin,
			PointsPerLoss:                  scoring.PointsPerLoss,
			PointsPerDraw:                  scoring.PointsPerDraw,
			TournamentWinPoints:            scoring.TournamentWinPoints,
			TournamentNonWinPoints:         scoring.TournamentNonWinPoints,
			TournamentDQPoints:             scoring.TournamentDQPoints,
			TournamentQualificationPercent: scoring.TournamentQualificationPercent,
		},
		RegularSeasonLockedAt: v.RegularSeasonLockedAt,
		TournamentCompletedAt: v.TournamentCompletedAt,
	}
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		UserID:                v.UserID,
		IsActive:              v.IsActive,
		Disqualified:          v.Disqualified,
		Wins:                  v.Wins,
		Losses:                v.Losses,
		Draws:                 v.Draws,
		TotalPoints:           v.TotalPoints,
		EloRating:             v.EloRating,
		FinalsQualified:       v.FinalsQualified,
		TournamentSeed:        v.TournamentSeed,
		TournamentPoints:      v.TournamentPoints,
		TournamentWins:        v.TournamentWins,
		TournamentNonWins:     v.TournamentNonWins,
		TournamentDQs:         v.TournamentDQs,
		ChampionshipQualified: v.ChampionshipQualified,
		IsChampion:            v.IsChampion,
	}
}

func standingsToDTO(items []standing.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, standingToDTO(item))
	}
	return out
}

func rankedToDTO(items []usecase.RankedStanding) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		dto := standingToDTO(item.Standing)
		dto.Rank = item.Rank
		out = append(out, dto)
	}
	return out
}

func headToHeadToDTO(v usecase.HeadToHead) headToHeadDTO {
	return headToHeadDTO{
		OpponentID: v.OpponentID,
		Games:      v.Games,
		Wins:       v.Wins,
		Losses:     v.Losses,
		Draws:      v.Draws,
	}
}
