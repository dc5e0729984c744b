package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	usecasemock "github.com/riskibarqy/football-stats/internal/mocks/usecase"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T, provider usecase.FootballDataProvider) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	now := func() time.Time { return fixedNow }
	standings := usecase.NewLeagueStandingService(provider)
	leaderboards := usecase.NewLeaderboardService(provider, usecase.NewSeasonResolver(provider, logger), logger)
	fixtures := usecase.NewFixtureService(provider, 0, logger)
	enrichment := usecase.NewEnrichmentService(provider, standings, 0, logger)

	handler := NewHandler(
		usecase.NewLeagueViewService(standings, leaderboards, fixtures, enrichment, now),
		usecase.NewTeamStatsService(provider),
		usecase.NewPlayerProfileService(provider),
		fixtures,
		logger,
	)
	handler.now = now

	return NewRouter(handler, logger, RouterConfig{
		SwaggerEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
		RequestIDs:         fixedIDGenerator{id: "req-1"},
	})
}

func serve(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func errorReason(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decodeBody(t, rec)
	errorObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %s", rec.Body.String())
	items := errorObj["errors"].([]any)
	require.NotEmpty(t, items)
	return items[0].(map[string]any)["reason"].(string)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewFootballDataProvider(t))

	rec := serve(t, router, "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "req-1", rec.Header().Get(requestIDHeader))
}

func TestListCompetitions(t *testing.T) {
	router := newTestRouter(t, usecasemock.NewFootballDataProvider(t))

	rec := serve(t, router, "/competitions")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 18)
	assert.EqualValues(t, 47, items[0]["id"])
	assert.Equal(t, "Premier League", items[0]["name"])
	broadcasters := items[0]["broadcasters"].(map[string]any)
	assert.Contains(t, broadcasters, "uk")
}

func TestLeagueStats_Validation(t *testing.T) {
	tests := []struct {
		name   string
		target string
		reason string
	}{
		{name: "missing league", target: "/stats", reason: "invalidInput"},
		{name: "non numeric", target: "/stats?league=abc", reason: "invalidInput"},
		{name: "negative", target: "/stats?league=-3", reason: "invalidInput"},
		{name: "unknown competition", target: "/stats?league=999999", reason: "unknownCompetition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := usecasemock.NewFootballDataProvider(t)
			rec := serve(t, newTestRouter(t, provider), tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.reason, errorReason(t, rec))
			provider.AssertNotCalled(t, "FetchLeague", mock.Anything, mock.Anything)
		})
	}
}

func TestLeagueStats_Success(t *testing.T) {
	provider := usecasemock.NewFootballDataProvider(t)
	provider.
		On("FetchLeague", mock.Anything, int64(47)).
		Return(usecase.ExternalLeague{
			ID:               47,
			SeasonCandidates: []int64{2025},
			Standings: []usecase.ExternalStanding{
				{TeamID: 8650, TeamName: "Liverpool", Rank: 1, Played: 20, ScoresStr: "49-17", GoalDiff: 32, Points: 47},
			},
			Matches: []usecase.ExternalMatch{
				{ID: "4506", Round: "21", Home: usecase.ExternalMatchSide{ID: 8650, Name: "Liverpool", ShortName: "LIV"}, UTCTime: "2026-03-02T15:00:00Z", KickoffAt: fixedNow.Add(24 * time.Hour)},
			},
		}, nil)
	provider.
		On("FetchSeasonLeaderboard", mock.Anything, int64(47), int64(2025), mock.Anything).
		Return(func(_ context.Context, _, _ int64, stat usecase.StatCategory) ([]usecase.ExternalStatEntry, error) {
			switch stat {
			case usecase.StatGoals:
				return []usecase.ExternalStatEntry{{PlayerID: 30893, TeamID: 8650, Name: "Mohamed Salah", Value: 18}}, nil
			case usecase.StatAssists:
				return []usecase.ExternalStatEntry{{PlayerID: 30893, TeamID: 8650, Name: "Mohamed Salah", Value: 11}}, nil
			default:
				return []usecase.ExternalStatEntry{{PlayerID: 30893, Value: 1750, SubValue: 20}}, nil
			}
		})

	rec := serve(t, newTestRouter(t, provider), "/stats?league=47")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, statsCacheControl, rec.Header().Get("Cache-Control"))

	var body leagueStatsDTO
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Premier League", body.League.Name)
	assert.Equal(t, "2026-03-01T10:30:00.000Z", body.LastUpdated)
	require.Len(t, body.TopScorers, 1)
	assert.Equal(t, "Liverpool", body.TopScorers[0].Team.Name)
	assert.Equal(t, 11, body.TopScorers[0].Assists)
	assert.Equal(t, 20, body.TopScorers[0].Appearances)
	assert.Equal(t, "Mohamed", body.TopScorers[0].Player.FirstName)
	require.Len(t, body.TopAssists, 1)
	assert.Equal(t, 18, body.TopAssists[0].Goals)
	require.Len(t, body.Standings, 1)
	assert.Equal(t, 17, body.Standings[0].GoalsAgainst)
	require.Len(t, body.Fixtures, 1)
	assert.Equal(t, "upcoming", body.Fixtures[0].Status)
	assert.NotContains(t, rec.Body.String(), `"score"`)
}

func TestLeagueStats_UpstreamFailureIsGeneric(t *testing.T) {
	provider := usecasemock.NewFootballDataProvider(t)
	provider.
		On("FetchLeague", mock.Anything, int64(47)).
		Return(usecase.ExternalLeague{}, &usecase.UpstreamError{StatusCode: 403, URL: "https://www.fotmob.com/api/leagues?id=47"})

	rec := serve(t, newTestRouter(t, provider), "/stats?league=47")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internalError", errorReason(t, rec))
	assert.NotContains(t, rec.Body.String(), "403")
}

func TestTeamStats(t *testing.T) {
	provider := usecasemock.NewFootballDataProvider(t)
	provider.
		On("FetchTeam", mock.Anything, int64(8650)).
		Return(usecase.ExternalTeam{ID: 8650, Name: "Liverpool", PrimaryLeagueID: 47, PrimarySeasonID: 2025}, nil).
		Once()

	rec := serve(t, newTestRouter(t, provider), "/team-stats?team=8650")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, statsCacheControl, rec.Header().Get("Cache-Control"))

	body := decodeBody(t, rec)
	overview := body["overview"].(map[string]any)
	assert.Equal(t, "Premier League", overview["leagueName"])
	assert.Nil(t, body["nextMatch"])
	assert.Equal(t, []any{}, body["scorers"])
	assert.Equal(t, "2026-03-01T10:30:00.000Z", body["lastUpdated"])
}

func TestTeamStats_MissingTeam(t *testing.T) {
	rec := serve(t, newTestRouter(t, usecasemock.NewFootballDataProvider(t)), "/team-stats")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayerStats(t *testing.T) {
	provider := usecasemock.NewFootballDataProvider(t)
	provider.
		On("FetchPlayer", mock.Anything, int64(30893), "").
		Return(usecase.ExternalPlayer{ID: 30893, Name: "Mohamed Salah"}, nil).
		Once()

	rec := serve(t, newTestRouter(t, provider), "/player-stats?id=30893")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Mohamed Salah", body["name"])
	assert.Equal(t, "Unknown", body["position"])
	assert.Nil(t, body["shirtNumber"])
	assert.Nil(t, body["seasonRating"])
	assert.Equal(t, []any{}, body["matches"])
}

func TestPlayerStats_CircuitOpen(t *testing.T) {
	provider := usecasemock.NewFootballDataProvider(t)
	provider.
		On("FetchPlayer", mock.Anything, int64(7), "").
		Return(usecase.ExternalPlayer{}, fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)).
		Once()

	rec := serve(t, newTestRouter(t, provider), "/player-stats?id=7")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internalError", errorReason(t, rec))
}

func TestTodayMatches_AlwaysOK(t *testing.T) {
	provider := usecasemock.NewFootballDataProvider(t)
	provider.
		On("FetchLeague", mock.Anything, mock.Anything).
		Return(usecase.ExternalLeague{}, &usecase.NetworkError{URL: "https://www.fotmob.com/api/leagues"})

	rec := serve(t, newTestRouter(t, provider), "/today-matches")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, todayCacheControl, rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRecoverPanic(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	recoverPanic(logging.NewNop(), next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internalError", errorReason(t, rec))
}

func TestOpenAPI(t *testing.T) {
	rec := serve(t, newTestRouter(t, usecasemock.NewFootballDataProvider(t)), "/openapi.yaml")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/today-matches")
}
