package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/garretthaima/escalation-league/internal/infrastructure/repository/memory"
	idgen "github.com/garretthaima/escalation-league/internal/platform/id"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/garretthaima/escalation-league/internal/platform/random"
	"github.com/garretthaima/escalation-league/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnvelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newTestRouterWithOptions(t, RouterOptions{})
}

func newTestRouterWithOptions(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()

	store := memory.NewSeededStore()
	logger := logging.NewNop()
	ids := &idgen.Sequence{Prefix: "pod-"}
	ledger := usecase.NewStatsLedger(nil, logger)

	handler := NewHandler(
		usecase.NewPodService(store, ledger, ids, nil, logger),
		usecase.NewTournamentService(store, ids, random.NewSeeded(3), nil, "RESET_TOURNAMENT", logger),
		usecase.NewMatchupService(store, random.NewSeeded(5), logger),
		usecase.NewLeagueService(store.Repositories().Leagues, store.Repositories().Standings),
		logger,
	)
	return NewRouter(handler, logger, opts)
}

func doRequest(t *testing.T, router http.Handler, method, path, caller, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if caller != "" {
		req.Header.Set(CallerHeader, caller)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) testEnvelope[T] {
	t.Helper()

	var out testEnvelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CreatePodRequiresCaller(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/leagues/"+memory.LeagueIDDemo+"/pods", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeEnvelope[any](t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "UNAUTHENTICATED", body.Error.Status)
}

func TestRouter_PodLifecycle(t *testing.T) {
	router := newTestRouter(t)
	leaguePath := "/v1/leagues/" + memory.LeagueIDDemo

	rec := doRequest(t, router, http.MethodPost, leaguePath+"/pods", "ava",
		`{"participant_ids":["ava","ben","cora","dev"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeEnvelope[podDTO](t, rec).Data
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "active", created.Status)
	assert.Len(t, created.Participants, 4)

	podPath := "/v1/pods/" + created.ID

	rec = doRequest(t, router, http.MethodPost, podPath+"/join", "eli", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "joining a full pod")

	rec = doRequest(t, router, http.MethodPost, podPath+"/result", "ava", `{"result":"win"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "pending", decodeEnvelope[podDTO](t, rec).Data.Status)

	for _, loser := range []string{"ben", "cora", "dev"} {
		rec = doRequest(t, router, http.MethodPost, podPath+"/result", loser, `{"result":"loss"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	completed := decodeEnvelope[podDTO](t, rec).Data
	assert.Equal(t, "complete", completed.Status)
	assert.Equal(t, "win", completed.Result)

	rec = doRequest(t, router, http.MethodPost, podPath+"/result", "ava", `{"result":"win"}`)
	assert.Equal(t, http.StatusConflict, rec.Code, "declaring on a completed pod")

	rec = doRequest(t, router, http.MethodGet, leaguePath+"/standings", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	standings := decodeEnvelope[[]standingDTO](t, rec).Data
	require.NotEmpty(t, standings)
	assert.Equal(t, "ava", standings[0].UserID)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 1, standings[0].Wins)
	assert.Equal(t, 4, standings[0].TotalPoints)
}

func TestRouter_CreatePodValidation(t *testing.T) {
	router := newTestRouter(t)
	path := "/v1/leagues/" + memory.LeagueIDDemo + "/pods"

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: `{"participant_ids":`, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"players":["ava"]}`, want: http.StatusBadRequest},
		{name: "too many players", body: `{"participant_ids":["ava","ben","cora","dev","eli"]}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, path, "ava", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_UnknownLeague(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/leagues/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/v1/leagues/missing/pods", "ava", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ListPodsRejectsBadFilter(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/pods?status=finished", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDDemo+"/pods?tournament=maybe", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ResetTournamentRequiresConfirmation(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost,
		"/v1/admin/leagues/"+memory.LeagueIDDemo+"/tournament/reset", "admin", `{"confirmation":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}
