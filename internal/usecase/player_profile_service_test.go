package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-stats/internal/domain/player"
)

func TestPlayerProfileService_Profile(t *testing.T) {
	t.Parallel()

	rating := "8.1"
	provider := newStubProvider()
	provider.players[playerKey(961995, "")] = ExternalPlayer{
		ID:       961995,
		Name:     "Erling Haaland",
		TeamID:   8456,
		TeamName: "Manchester City",
		Position: "Striker",
		Info: map[string]ExternalPlayerInfo{
			infoAge:     {Number: 25},
			infoHeight:  {Fallback: "195 cm"},
			infoShirt:   {Number: 9},
			infoCountry: {Fallback: "Norway", IconID: "NOR"},
		},
		SeasonStats: map[string]float64{
			statGoals:   22,
			statAssists: 4,
			statMatches: 20,
			statMinutes: 1710,
			statRating:  7.95,
		},
		RecentMatches: []ExternalPlayerMatch{
			{MatchID: "1", Goals: 2, Rating: &rating},
			{MatchID: "2"},
			{MatchID: "3", Assists: 1},
		},
	}

	profile, err := NewPlayerProfileService(provider).Profile(context.Background(), 961995)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.ShirtNumber == nil || *profile.ShirtNumber != 9 {
		t.Fatalf("unexpected shirt number: %v", profile.ShirtNumber)
	}
	if profile.SeasonRating == nil || *profile.SeasonRating != "7.95" {
		t.Fatalf("unexpected season rating: %v", profile.SeasonRating)
	}
	if profile.Age != 25 || profile.Height != "195 cm" || profile.CountryCode != "NOR" {
		t.Fatalf("unexpected bio: %+v", profile)
	}
	if profile.SeasonGoals != 22 || profile.SeasonAppearances != 20 || profile.SeasonMinutes != 1710 {
		t.Fatalf("unexpected season counters: %+v", profile)
	}
	if len(profile.Matches) != 2 || profile.Matches[0].MatchID != "1" || profile.Matches[1].MatchID != "3" {
		t.Fatalf("expected only contributing matches, got=%+v", profile.Matches)
	}
	if profile.Matches[0].Rating == nil || *profile.Matches[0].Rating != "8.1" {
		t.Fatalf("unexpected match rating: %v", profile.Matches[0].Rating)
	}
}

func TestPlayerProfileService_ProfileDefaults(t *testing.T) {
	t.Parallel()

	provider := newStubProvider()
	provider.players[playerKey(5, "")] = ExternalPlayer{ID: 5, Name: "Unknown Youth"}

	profile, err := NewPlayerProfileService(provider).Profile(context.Background(), 5)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.Position != player.DefaultPosition {
		t.Fatalf("expected default position, got=%q", profile.Position)
	}
	if profile.ShirtNumber != nil || profile.SeasonRating != nil {
		t.Fatalf("expected nil shirt and rating, got=%v %v", profile.ShirtNumber, profile.SeasonRating)
	}
	if profile.Matches == nil {
		t.Fatalf("matches must be non-nil")
	}
}
