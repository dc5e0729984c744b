package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/asset"
	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/teamstats"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// TeamFormLimit caps recent form entries.
const TeamFormLimit = 10

type TeamStatsService struct {
	provider FootballDataProvider
}

func NewTeamStatsService(provider FootballDataProvider) *TeamStatsService {
	return &TeamStatsService{provider: provider}
}

func (s *TeamStatsService) Report(ctx context.Context, teamID int64) (teamstats.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.Report", attribute.Int64("team_id", teamID))
	defer span.End()

	if teamID <= 0 {
		return teamstats.Report{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	team, err := s.provider.FetchTeam(ctx, teamID)
	if err != nil {
		return teamstats.Report{}, fmt.Errorf("get team stats: %w", err)
	}

	overview := teamstats.Overview{
		ID:       team.ID,
		Name:     team.Name,
		Logo:     asset.TeamLogoURL(team.ID),
		Country:  team.Country,
		LeagueID: team.PrimaryLeagueID,
		SeasonID: team.PrimarySeasonID,
	}
	if item, ok := competition.Lookup(team.PrimaryLeagueID); ok {
		overview.LeagueName = item.Name
	}

	var scorers, assisters []ExternalTeamStatEntry
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		rows, err := s.fetchLeaderboard(ctx, team.Leaderboards[TeamLeaderboardGoals])
		scorers = rows
		return err
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.fetchLeaderboard(ctx, team.Leaderboards[TeamLeaderboardAssists])
		assisters = rows
		return err
	})
	if err := p.Wait(); err != nil {
		return teamstats.Report{}, fmt.Errorf("get team leaderboards: %w", err)
	}

	report := teamstats.Report{
		Overview:  overview,
		Scorers:   filterTeamPlayers(scorers, teamID),
		Assisters: filterTeamPlayers(assisters, teamID),
		Form:      mapTeamForm(team.Form, team.Name),
	}
	if nm := team.NextMatch; nm != nil {
		report.NextMatch = &teamstats.NextMatch{
			Home:       nm.Home,
			Away:       nm.Away,
			Date:       nm.UTCTime,
			Tournament: nm.Tournament,
		}
	}
	return report, nil
}

// fetchLeaderboard treats a missing link as an empty leaderboard.
func (s *TeamStatsService) fetchLeaderboard(ctx context.Context, url string) ([]ExternalTeamStatEntry, error) {
	if url == "" {
		return nil, nil
	}
	return s.provider.FetchTeamLeaderboard(ctx, url)
}

func filterTeamPlayers(rows []ExternalTeamStatEntry, teamID int64) []teamstats.PlayerStat {
	out := make([]teamstats.PlayerStat, 0, 16)
	for _, row := range rows {
		if row.TeamID != teamID {
			continue
		}
		out = append(out, teamstats.PlayerStat{
			ID:          row.PlayerID,
			Name:        row.Name,
			Photo:       asset.PlayerPhotoURL(row.PlayerID),
			Value:       row.Value,
			SubValue:    row.SubValue,
			Appearances: row.MatchesPlayed,
			Minutes:     row.MinutesPlayed,
			Rank:        row.Rank,
			Country:     row.CountryCode,
		})
	}
	return out
}

// mapTeamForm names the opponent as whichever side is not the team itself.
func mapTeamForm(entries []ExternalFormEntry, teamName string) []teamstats.FormEntry {
	limit := min(len(entries), TeamFormLimit)
	out := make([]teamstats.FormEntry, 0, limit)
	for _, f := range entries[:limit] {
		opponent := f.HomeTeam
		if f.HomeTeam == teamName {
			opponent = f.AwayTeam
		}
		out = append(out, teamstats.FormEntry{
			Result:   f.Result,
			Opponent: opponent,
			Score:    f.Score,
			Date:     f.UTCTime,
		})
	}
	return out
}
