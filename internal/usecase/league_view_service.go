package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-stats/internal/domain/playerstats"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// LeagueView is everything the league page shows for one competition.
type LeagueView struct {
	League      competition.Competition
	TopScorers  []playerstats.Row
	TopAssists  []playerstats.Row
	Standings   []leaguestanding.Standing
	Fixtures    []fixture.Fixture
	LastUpdated time.Time
}

type LeagueViewService struct {
	standings    *LeagueStandingService
	leaderboards *LeaderboardService
	fixtures     *FixtureService
	enrichment   *EnrichmentService
	now          func() time.Time
}

func NewLeagueViewService(
	standings *LeagueStandingService,
	leaderboards *LeaderboardService,
	fixtures *FixtureService,
	enrichment *EnrichmentService,
	now func() time.Time,
) *LeagueViewService {
	if now == nil {
		now = time.Now
	}
	return &LeagueViewService{
		standings:    standings,
		leaderboards: leaderboards,
		fixtures:     fixtures,
		enrichment:   enrichment,
		now:          now,
	}
}

// Build assembles a league view. Standings load first since team names depend on them;
// scorers, assists and fixtures then load in parallel, followed by team-name enrichment of
// both lists and finally penalty enrichment of the scorers.
func (s *LeagueViewService) Build(ctx context.Context, leagueID int64) (LeagueView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueViewService.Build", attribute.Int64("league_id", leagueID))
	defer span.End()

	if leagueID <= 0 {
		return LeagueView{}, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}
	league, ok := competition.Lookup(leagueID)
	if !ok {
		return LeagueView{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	standings, err := s.standings.ListByLeague(ctx, leagueID)
	if err != nil {
		return LeagueView{}, err
	}

	var scorers, assists []playerstats.Row
	var fixtures []fixture.Fixture
	fetch := pool.New().WithErrors().WithContext(ctx)
	fetch.Go(func(ctx context.Context) error {
		rows, err := s.leaderboards.TopScorers(ctx, leagueID)
		scorers = rows
		return err
	})
	fetch.Go(func(ctx context.Context) error {
		rows, err := s.leaderboards.TopAssists(ctx, leagueID)
		assists = rows
		return err
	})
	fetch.Go(func(ctx context.Context) error {
		rows, err := s.fixtures.Upcoming(ctx, leagueID, 0)
		fixtures = rows
		return err
	})
	if err := fetch.Wait(); err != nil {
		return LeagueView{}, fmt.Errorf("build league view league_id=%d: %w", leagueID, err)
	}

	enrich := pool.New().WithErrors().WithContext(ctx)
	enrich.Go(func(ctx context.Context) error {
		rows, err := s.enrichment.EnrichTeamNames(ctx, scorers, leagueID)
		scorers = rows
		return err
	})
	enrich.Go(func(ctx context.Context) error {
		rows, err := s.enrichment.EnrichTeamNames(ctx, assists, leagueID)
		assists = rows
		return err
	})
	if err := enrich.Wait(); err != nil {
		return LeagueView{}, fmt.Errorf("build league view league_id=%d: %w", leagueID, err)
	}

	scorers = s.enrichment.EnrichPenalties(ctx, scorers, leagueID)

	return LeagueView{
		League:      league,
		TopScorers:  scorers,
		TopAssists:  assists,
		Standings:   standings,
		Fixtures:    fixtures,
		LastUpdated: s.now().UTC(),
	}, nil
}
