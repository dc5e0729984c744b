package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func newLeagueViewService(provider *stubProvider, now time.Time) *LeagueViewService {
	logger := logging.NewNop()
	standings := NewLeagueStandingService(provider)
	return NewLeagueViewService(
		standings,
		NewLeaderboardService(provider, NewSeasonResolver(provider, logger), logger),
		NewFixtureService(provider, 0, logger),
		NewEnrichmentService(provider, standings, 0, logger),
		func() time.Time { return now },
	)
}

func TestLeagueViewService_Build(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	provider := newStubProvider()
	provider.leagues[47] = ExternalLeague{
		ID:               47,
		SeasonCandidates: []int64{2025},
		Standings: []ExternalStanding{
			{TeamID: 8650, TeamName: "Liverpool", Rank: 1, ScoresStr: "49-17"},
			{TeamID: 9825, TeamName: "Arsenal", Rank: 2, ScoresStr: "40-20"},
		},
		Matches: []ExternalMatch{
			match("next", now.Add(24*time.Hour), false, false, false),
		},
	}
	provider.leaderboards[leaderboardKey(47, 2025, StatGoals)] = []ExternalStatEntry{
		{PlayerID: 1, TeamID: 8650, Name: "Mohamed Salah", Value: 18, SubValue: 2},
		{PlayerID: 2, TeamID: 4444, Name: "Loan Star", Value: 10},
	}
	provider.leaderboards[leaderboardKey(47, 2025, StatAssists)] = []ExternalStatEntry{
		{PlayerID: 3, TeamID: 9825, Name: "Bukayo Saka", Value: 9},
	}
	provider.players[playerKey(1, "")] = ExternalPlayer{ID: 1}
	provider.players[playerKey(1, DefaultEntryID)] = ExternalPlayer{
		ID:    1,
		Shots: []ExternalShot{{EventType: "Goal", Situation: "Penalty"}, {EventType: "Save", Situation: "Penalty"}},
	}

	view, err := newLeagueViewService(provider, now).Build(context.Background(), 47)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if view.League.Name != "Premier League" {
		t.Fatalf("unexpected league: %+v", view.League)
	}
	if !view.LastUpdated.Equal(now) || view.LastUpdated.Location() != time.UTC {
		t.Fatalf("unexpected last updated: %v", view.LastUpdated)
	}
	if len(view.Standings) != 2 || len(view.Fixtures) != 1 {
		t.Fatalf("unexpected standings/fixtures: %d %d", len(view.Standings), len(view.Fixtures))
	}

	if len(view.TopScorers) != 2 {
		t.Fatalf("expected 2 scorers, got=%d", len(view.TopScorers))
	}
	salah := view.TopScorers[0]
	if salah.Team.Name != "Liverpool" || salah.Penalties != 1 || salah.PenaltyMissed != 1 {
		t.Fatalf("unexpected enriched scorer: %+v", salah)
	}
	if view.TopScorers[1].Team.Name != "Team 4444" {
		t.Fatalf("unexpected fallback team name: %q", view.TopScorers[1].Team.Name)
	}
	if len(view.TopAssists) != 1 || view.TopAssists[0].Team.Name != "Arsenal" {
		t.Fatalf("unexpected assists: %+v", view.TopAssists)
	}
}

func TestLeagueViewService_BuildUnknownLeague(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	_, err := newLeagueViewService(provider, time.Now()).Build(context.Background(), 999999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got=%v", err)
	}
	if n := provider.totalCalls(); n != 0 {
		t.Fatalf("unknown league must not reach the provider, got=%d calls", n)
	}
}

func TestLeagueViewService_BuildInvalidLeague(t *testing.T) {
	t.Parallel()

	_, err := newLeagueViewService(newStubProvider(), time.Now()).Build(context.Background(), 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got=%v", err)
	}
}

func TestLeagueViewService_BuildStandingsFailure(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	_, err := newLeagueViewService(provider, time.Now()).Build(context.Background(), 47)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected upstream error, got=%v", err)
	}
	if n := provider.callCount("FetchSeasonLeaderboard"); n != 0 {
		t.Fatalf("leaderboards must not load after standings failed, got=%d", n)
	}
}
