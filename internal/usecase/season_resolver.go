package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultSeasonProbeLimit bounds how many candidate seasons are probed before falling back.
const DefaultSeasonProbeLimit = 3

// SeasonResolver finds the season of a competition that already has player statistics.
type SeasonResolver struct {
	provider   FootballDataProvider
	logger     *logging.Logger
	probeLimit int
}

func NewSeasonResolver(provider FootballDataProvider, logger *logging.Logger) *SeasonResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonResolver{
		provider:   provider,
		logger:     logger,
		probeLimit: DefaultSeasonProbeLimit,
	}
}

// Resolve returns an error only when the competition payload itself cannot be fetched.
// A competition without candidates resolves to season 0.
func (r *SeasonResolver) Resolve(ctx context.Context, leagueID int64) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonResolver.Resolve", attribute.Int64("league_id", leagueID))
	defer span.End()

	league, err := r.provider.FetchLeague(ctx, leagueID)
	if err != nil {
		return 0, fmt.Errorf("resolve season league_id=%d: %w", leagueID, err)
	}
	return r.ResolveFrom(ctx, leagueID, league.SeasonCandidates), nil
}

// ResolveFrom probes candidates in order and never fails. Probe errors count as empty results.
func (r *SeasonResolver) ResolveFrom(ctx context.Context, leagueID int64, candidates []int64) int64 {
	if len(candidates) == 0 {
		return 0
	}

	limit := min(r.probeLimit, len(candidates))
	for _, seasonID := range candidates[:limit] {
		rows, err := r.provider.FetchSeasonLeaderboard(ctx, leagueID, seasonID, StatGoals)
		if err != nil {
			r.logger.DebugContext(ctx, "season probe failed", "league_id", leagueID, "season_id", seasonID, "error", err)
			continue
		}
		if len(rows) > 0 {
			return seasonID
		}
	}

	r.logger.DebugContext(ctx, "no candidate season has data, using first", "league_id", leagueID, "season_id", candidates[0])
	return candidates[0]
}
