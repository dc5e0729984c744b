package usecase

import (
	"context"
	"errors"
	"testing"
)

const (
	goalsBoardURL   = "https://data.fotmob.com/stats/47/season/2025/goals.json"
	assistsBoardURL = "https://data.fotmob.com/stats/47/season/2025/goal_assist.json"
)

func TestTeamStatsService_Report(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.teams[8650] = ExternalTeam{
		ID:              8650,
		Name:            "Liverpool",
		Country:         "ENG",
		PrimaryLeagueID: 47,
		PrimarySeasonID: 2025,
		Leaderboards: map[string]string{
			TeamLeaderboardGoals:   goalsBoardURL,
			TeamLeaderboardAssists: assistsBoardURL,
		},
		Form: []ExternalFormEntry{
			{Result: "W", Score: "2-0", UTCTime: "2026-02-01T15:00:00Z", HomeTeam: "Liverpool", AwayTeam: "Chelsea"},
			{Result: "L", Score: "1-0", UTCTime: "2026-02-08T15:00:00Z", HomeTeam: "Everton", AwayTeam: "Liverpool"},
		},
		NextMatch: &ExternalNextMatch{Home: "Liverpool", Away: "Arsenal", UTCTime: "2026-02-15T17:30:00Z", Tournament: "Premier League"},
	}
	provider.teamLeaderboards[goalsBoardURL] = []ExternalTeamStatEntry{
		{PlayerID: 1, Name: "Mohamed Salah", TeamID: 8650, Value: 18, SubValue: 4, MinutesPlayed: 1800, MatchesPlayed: 20, Rank: 1, CountryCode: "EGY"},
		{PlayerID: 2, Name: "Transferred Out", TeamID: 9999, Value: 3, Rank: 2},
	}
	provider.teamLeaderboards[assistsBoardURL] = []ExternalTeamStatEntry{
		{PlayerID: 3, Name: "Trent Alexander-Arnold", TeamID: 8650, Value: 9, Rank: 1},
	}

	report, err := NewTeamStatsService(provider).Report(context.Background(), 8650)
	if err != nil {
		t.Fatalf("team report: %v", err)
	}
	if report.Overview.LeagueName != "Premier League" || report.Overview.SeasonID != 2025 {
		t.Fatalf("unexpected overview: %+v", report.Overview)
	}
	if len(report.Scorers) != 1 || report.Scorers[0].ID != 1 || report.Scorers[0].Appearances != 20 {
		t.Fatalf("unexpected scorers: %+v", report.Scorers)
	}
	if len(report.Assisters) != 1 || report.Assisters[0].Value != 9 {
		t.Fatalf("unexpected assisters: %+v", report.Assisters)
	}
	if len(report.Form) != 2 || report.Form[0].Opponent != "Chelsea" || report.Form[1].Opponent != "Everton" {
		t.Fatalf("unexpected form: %+v", report.Form)
	}
	if report.NextMatch == nil || report.NextMatch.Away != "Arsenal" {
		t.Fatalf("unexpected next match: %+v", report.NextMatch)
	}
}

func TestTeamStatsService_ReportWithoutLeaderboards(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.teams[100] = ExternalTeam{ID: 100, Name: "Lowly FC", PrimaryLeagueID: 123456}

	report, err := NewTeamStatsService(provider).Report(context.Background(), 100)
	if err != nil {
		t.Fatalf("team report: %v", err)
	}
	if report.Scorers == nil || len(report.Scorers) != 0 || len(report.Assisters) != 0 {
		t.Fatalf("expected empty leaderboards, got=%+v %+v", report.Scorers, report.Assisters)
	}
	if report.Overview.LeagueName != "" || report.NextMatch != nil {
		t.Fatalf("unexpected overview: %+v", report)
	}
	if n := provider.callCount("FetchTeamLeaderboard"); n != 0 {
		t.Fatalf("expected no leaderboard fetches, got=%d", n)
	}
}

func TestTeamStatsService_FormIsCapped(t *testing.T) {
	t.Parallel()

	entries := make([]ExternalFormEntry, 0, 14)
	for i := 0; i < 14; i++ {
		entries = append(entries, ExternalFormEntry{Result: "D", HomeTeam: "A", AwayTeam: "B"})
	}
	if got := mapTeamForm(entries, "A"); len(got) != TeamFormLimit {
		t.Fatalf("expected %d entries, got=%d", TeamFormLimit, len(got))
	}
}

func TestTeamStatsService_LeaderboardFailurePropagates(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.teams[8650] = ExternalTeam{
		ID:           8650,
		Leaderboards: map[string]string{TeamLeaderboardGoals: goalsBoardURL},
	}

	_, err := NewTeamStatsService(provider).Report(context.Background(), 8650)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected upstream error, got=%v", err)
	}
}
