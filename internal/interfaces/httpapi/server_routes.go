package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerPodRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/pods", handler.ListPods)
	mux.HandleFunc("GET /v1/pods/{podID}", handler.GetPod)
	mux.Handle("POST /v1/leagues/{leagueID}/pods", RequireCaller(http.HandlerFunc(handler.CreatePod)))
	mux.Handle("POST /v1/pods/{podID}/join", RequireCaller(http.HandlerFunc(handler.JoinPod)))
	mux.Handle("POST /v1/pods/{podID}/result", RequireCaller(http.HandlerFunc(handler.DeclareResult)))
	mux.Handle("DELETE /v1/pods/{podID}", RequireCaller(http.HandlerFunc(handler.DeletePod)))
}

// Admin permission is checked upstream; these routes only need a caller.
func registerAdminPodRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("PUT /v1/admin/pods/{podID}", RequireCaller(http.HandlerFunc(handler.ReplaceRoster)))
	mux.Handle("POST /v1/admin/pods/{podID}/participants", RequireCaller(http.HandlerFunc(handler.AddParticipant)))
	mux.Handle("DELETE /v1/admin/pods/{podID}/participants/{playerID}", RequireCaller(http.HandlerFunc(handler.RemoveParticipant)))
	mux.Handle("PUT /v1/admin/pods/{podID}/participants/{playerID}", RequireCaller(http.HandlerFunc(handler.UpdateParticipantResult)))
	mux.Handle("POST /v1/admin/pods/{podID}/participants/{playerID}/dq", RequireCaller(http.HandlerFunc(handler.ToggleDisqualification)))
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matchups", handler.MatchupMatrix)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matchups/{playerID}", handler.OpponentMatchups)
	mux.HandleFunc("POST /v1/leagues/{leagueID}/pods/suggest", handler.SuggestPods)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/tournament", handler.TournamentStatus)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/tournament/standings", handler.TournamentStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/tournament/qualifiers", handler.ChampionshipQualifiers)

	mux.Handle("POST /v1/admin/leagues/{leagueID}/tournament/end-regular-season", RequireCaller(http.HandlerFunc(handler.EndRegularSeason)))
	mux.Handle("POST /v1/admin/leagues/{leagueID}/tournament/generate-pods", RequireCaller(http.HandlerFunc(handler.GenerateTournamentPods)))
	mux.Handle("POST /v1/admin/leagues/{leagueID}/tournament/publish-pods", RequireCaller(http.HandlerFunc(handler.PublishTournamentPods)))
	mux.Handle("POST /v1/admin/leagues/{leagueID}/tournament/swap-players", RequireCaller(http.HandlerFunc(handler.SwapTournamentPlayers)))
	mux.Handle("POST /v1/admin/leagues/{leagueID}/tournament/start-championship", RequireCaller(http.HandlerFunc(handler.StartChampionship)))
	mux.Handle("POST /v1/admin/leagues/{leagueID}/tournament/complete", RequireCaller(http.HandlerFunc(handler.CompleteTournament)))
	mux.Handle("POST /v1/admin/leagues/{leagueID}/tournament/reset", RequireCaller(http.HandlerFunc(handler.ResetTournament)))
	mux.Handle("DELETE /v1/admin/leagues/{leagueID}/tournament/drafts", RequireCaller(http.HandlerFunc(handler.DeleteTournamentDrafts)))
}
