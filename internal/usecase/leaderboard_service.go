package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/domain/asset"
	"github.com/riskibarqy/football-stats/internal/domain/playerstats"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// LeaderboardLimit caps top scorer and top assist lists.
const LeaderboardLimit = 25

type LeaderboardService struct {
	provider FootballDataProvider
	seasons  *SeasonResolver
	logger   *logging.Logger
}

func NewLeaderboardService(provider FootballDataProvider, seasons *SeasonResolver, logger *logging.Logger) *LeaderboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderboardService{
		provider: provider,
		seasons:  seasons,
		logger:   logger,
	}
}

// TopScorers ranks by goals. Penalties come from the goals sub-stat and are refined later by enrichment.
func (s *LeaderboardService) TopScorers(ctx context.Context, leagueID int64) ([]playerstats.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TopScorers", attribute.Int64("league_id", leagueID))
	defer span.End()

	return s.build(ctx, leagueID, StatGoals)
}

// TopAssists ranks by assists; penalties stay 0.
func (s *LeaderboardService) TopAssists(ctx context.Context, leagueID int64) ([]playerstats.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.TopAssists", attribute.Int64("league_id", leagueID))
	defer span.End()

	return s.build(ctx, leagueID, StatAssists)
}

type leaderboardSet struct {
	goals   []ExternalStatEntry
	assists []ExternalStatEntry
	minutes []ExternalStatEntry
}

func (s *LeaderboardService) build(ctx context.Context, leagueID int64, primary StatCategory) ([]playerstats.Row, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	seasonID, err := s.seasons.Resolve(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if seasonID <= 0 {
		return []playerstats.Row{}, nil
	}

	set, err := s.fetchCategories(ctx, leagueID, seasonID, primary)
	if err != nil {
		return nil, err
	}

	if primary == StatAssists {
		return buildRows(set.assists, set.goals, set.minutes, false), nil
	}
	return buildRows(set.goals, set.assists, set.minutes, true), nil
}

// fetchCategories loads the three stat categories in parallel. Only the primary category is
// required; a failed join partner degrades to an empty list.
func (s *LeaderboardService) fetchCategories(ctx context.Context, leagueID, seasonID int64, primary StatCategory) (leaderboardSet, error) {
	var set leaderboardSet
	targets := map[StatCategory]*[]ExternalStatEntry{
		StatGoals:   &set.goals,
		StatAssists: &set.assists,
		StatMinutes: &set.minutes,
	}

	p := pool.New().WithErrors().WithContext(ctx)
	for stat, dst := range targets {
		p.Go(func(ctx context.Context) error {
			rows, err := s.provider.FetchSeasonLeaderboard(ctx, leagueID, seasonID, stat)
			if err != nil {
				if stat == primary {
					return err
				}
				s.logger.WarnContext(ctx, "leaderboard category unavailable, joining as empty",
					"league_id", leagueID,
					"season_id", seasonID,
					"stat", string(stat),
					"error", err,
				)
				rows = []ExternalStatEntry{}
			}
			*dst = rows
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return leaderboardSet{}, fmt.Errorf("fetch %s leaderboard: %w", primary, err)
	}
	return set, nil
}

// buildRows ranks primary by provider order and joins the partner stat and minutes by player id.
func buildRows(primary, partner, minutes []ExternalStatEntry, primaryIsGoals bool) []playerstats.Row {
	partnerByID := make(map[int64]int, len(partner))
	for _, item := range partner {
		if _, exists := partnerByID[item.PlayerID]; !exists {
			partnerByID[item.PlayerID] = item.Value
		}
	}
	minutesByID := make(map[int64]ExternalStatEntry, len(minutes))
	for _, item := range minutes {
		if _, exists := minutesByID[item.PlayerID]; !exists {
			minutesByID[item.PlayerID] = item
		}
	}

	limit := min(len(primary), LeaderboardLimit)
	out := make([]playerstats.Row, 0, limit)
	for idx, item := range primary[:limit] {
		first, last := playerstats.SplitName(item.Name)
		mins := minutesByID[item.PlayerID]

		row := playerstats.Row{
			Rank: idx + 1,
			Player: playerstats.Player{
				ID:        item.PlayerID,
				Name:      item.Name,
				FirstName: first,
				LastName:  last,
				Photo:     asset.PlayerPhotoURL(item.PlayerID),
			},
			Team: playerstats.Team{
				ID:   item.TeamID,
				Logo: asset.TeamLogoURL(item.TeamID),
			},
			Appearances: mins.SubValue,
			Minutes:     mins.Value,
		}
		if primaryIsGoals {
			row.Goals = item.Value
			row.Assists = partnerByID[item.PlayerID]
			row.Penalties = item.SubValue
		} else {
			row.Assists = item.Value
			row.Goals = partnerByID[item.PlayerID]
		}
		out = append(out, row)
	}
	return out
}
