package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/asset"
	"github.com/riskibarqy/football-stats/internal/domain/leaguestanding"
	"go.opentelemetry.io/otel/attribute"
)

type LeagueStandingService struct {
	provider FootballDataProvider
}

func NewLeagueStandingService(provider FootballDataProvider) *LeagueStandingService {
	return &LeagueStandingService{provider: provider}
}

// ListByLeague returns the "all games" table. A competition without a table yields an empty slice.
func (s *LeagueStandingService) ListByLeague(ctx context.Context, leagueID int64) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.ListByLeague", attribute.Int64("league_id", leagueID))
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	league, err := s.provider.FetchLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list league standings: %w", err)
	}
	return mapStandings(league.Standings), nil
}

func mapStandings(rows []ExternalStanding) []leaguestanding.Standing {
	out := make([]leaguestanding.Standing, 0, len(rows))
	for _, row := range rows {
		goalsFor, goalsAgainst := leaguestanding.ParseScores(row.ScoresStr)
		out = append(out, leaguestanding.Standing{
			Rank: row.Rank,
			Team: leaguestanding.Team{
				ID:   row.TeamID,
				Name: row.TeamName,
				Logo: asset.TeamLogoURL(row.TeamID),
			},
			Points:       row.Points,
			Played:       row.Played,
			Win:          row.Wins,
			Draw:         row.Draws,
			Lose:         row.Losses,
			GoalsFor:     goalsFor,
			GoalsAgainst: goalsAgainst,
			GoalsDiff:    row.GoalDiff,
		})
	}
	return out
}
