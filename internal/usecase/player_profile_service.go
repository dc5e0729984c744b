package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/riskibarqy/football-stats/internal/domain/asset"
	"github.com/riskibarqy/football-stats/internal/domain/player"
	"go.opentelemetry.io/otel/attribute"
)

// Provider keys for biographical attributes and main league counters.
const (
	infoAge     = "age_sentencecase"
	infoHeight  = "height_sentencecase"
	infoShirt   = "shirt"
	infoCountry = "country_sentencecase"

	statGoals   = "goals"
	statAssists = "assists"
	statMatches = "matches_uppercase"
	statMinutes = "minutes_played"
	statRating  = "rating"
)

type PlayerProfileService struct {
	provider FootballDataProvider
}

func NewPlayerProfileService(provider FootballDataProvider) *PlayerProfileService {
	return &PlayerProfileService{provider: provider}
}

// Profile returns season counters and only the recent matches with a goal or an assist.
func (s *PlayerProfileService) Profile(ctx context.Context, playerID int64) (player.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerProfileService.Profile", attribute.Int64("player_id", playerID))
	defer span.End()

	if playerID <= 0 {
		return player.Profile{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	raw, err := s.provider.FetchPlayer(ctx, playerID, "")
	if err != nil {
		return player.Profile{}, fmt.Errorf("get player profile: %w", err)
	}
	return mapProfile(raw), nil
}

func mapProfile(raw ExternalPlayer) player.Profile {
	country := raw.Info[infoCountry]
	profile := player.Profile{
		ID:                raw.ID,
		Name:              raw.Name,
		Photo:             asset.PlayerPhotoURL(raw.ID),
		TeamID:            raw.TeamID,
		TeamName:          raw.TeamName,
		TeamLogo:          asset.TeamLogoURL(raw.TeamID),
		Position:          raw.Position,
		Country:           country.Fallback,
		CountryCode:       country.IconID,
		Age:               int(raw.Info[infoAge].Number),
		Height:            raw.Info[infoHeight].Fallback,
		SeasonGoals:       int(raw.SeasonStats[statGoals]),
		SeasonAssists:     int(raw.SeasonStats[statAssists]),
		SeasonAppearances: int(raw.SeasonStats[statMatches]),
		SeasonMinutes:     int(raw.SeasonStats[statMinutes]),
		Matches:           make([]player.MatchEntry, 0, len(raw.RecentMatches)),
	}
	if profile.Position == "" {
		profile.Position = player.DefaultPosition
	}
	if shirt := int(raw.Info[infoShirt].Number); shirt != 0 {
		profile.ShirtNumber = &shirt
	}
	if value, ok := raw.SeasonStats[statRating]; ok {
		rating := strconv.FormatFloat(value, 'f', -1, 64)
		profile.SeasonRating = &rating
	}

	for _, m := range raw.RecentMatches {
		entry := player.MatchEntry{
			MatchID:          m.MatchID,
			Date:             m.UTCTime,
			LeagueID:         m.LeagueID,
			LeagueName:       m.LeagueName,
			Stage:            m.Stage,
			TeamName:         m.TeamName,
			TeamID:           m.TeamID,
			OpponentName:     m.OpponentName,
			OpponentID:       m.OpponentID,
			IsHome:           m.IsHome,
			HomeScore:        m.HomeScore,
			AwayScore:        m.AwayScore,
			Goals:            m.Goals,
			Assists:          m.Assists,
			MinutesPlayed:    m.MinutesPlayed,
			Rating:           m.Rating,
			IsTopRating:      m.IsTopRating,
			PlayerOfTheMatch: m.PlayerOfTheMatch,
			YellowCards:      m.YellowCards,
			RedCards:         m.RedCards,
			OnBench:          m.OnBench,
		}
		if entry.Contributed() {
			profile.Matches = append(profile.Matches, entry)
		}
	}
	return profile
}
