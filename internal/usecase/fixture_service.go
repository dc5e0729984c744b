package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultFixturesLimit = 30

type FixtureService struct {
	provider     FootballDataProvider
	logger       *logging.Logger
	defaultLimit int
}

func NewFixtureService(provider FootballDataProvider, defaultLimit int, logger *logging.Logger) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultFixturesLimit
	}
	return &FixtureService{
		provider:     provider,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// Upcoming returns matches that are not cancelled and not finished, earliest first.
// A limit of 0 or less uses the configured default.
func (s *FixtureService) Upcoming(ctx context.Context, leagueID int64, limit int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Upcoming", attribute.Int64("league_id", leagueID))
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	league, err := s.provider.FetchLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list upcoming fixtures: %w", err)
	}

	pending := make([]ExternalMatch, 0, len(league.Matches))
	for _, m := range league.Matches {
		if m.Cancelled || m.Finished {
			continue
		}
		pending = append(pending, m)
	}
	sortMatchesByKickoff(pending)
	if len(pending) > limit {
		pending = pending[:limit]
	}

	out := make([]fixture.Fixture, 0, len(pending))
	for _, m := range pending {
		out = append(out, fixture.Fixture{
			ID:        m.ID,
			Round:     m.Round,
			HomeTeam:  mapFixtureTeam(m.Home),
			AwayTeam:  mapFixtureTeam(m.Away),
			UTCTime:   m.UTCTime,
			KickoffAt: m.KickoffAt,
			Status:    fixture.StatusFromFlags(m.Started, m.Finished),
			Score:     m.Score,
		})
	}
	return out, nil
}

// TodayMatches collects every catalog competition's matches scheduled on now's UTC date.
// Competitions that fail to load or have no matches are left out; order follows the catalog.
func (s *FixtureService) TodayMatches(ctx context.Context, now time.Time) []fixture.LeagueMatches {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.TodayMatches")
	defer span.End()

	today := now.UTC()
	groups := iter.Map(competition.All(), func(item *competition.Competition) *fixture.LeagueMatches {
		league, err := s.provider.FetchLeague(ctx, item.ID)
		if err != nil {
			s.logger.WarnContext(ctx, "skip competition for today's matches", "league_id", item.ID, "error", err)
			return nil
		}

		todays := make([]ExternalMatch, 0, 8)
		for _, m := range league.Matches {
			if m.Cancelled || m.KickoffAt.IsZero() || !sameUTCDate(m.KickoffAt, today) {
				continue
			}
			todays = append(todays, m)
		}
		if len(todays) == 0 {
			return nil
		}
		sortMatchesByKickoff(todays)

		group := &fixture.LeagueMatches{
			LeagueID:      item.ID,
			LeagueName:    item.Name,
			LeagueCountry: item.Country,
			Matches:       make([]fixture.Match, 0, len(todays)),
		}
		for _, m := range todays {
			group.Matches = append(group.Matches, fixture.Match{
				MatchID:    m.ID,
				LeagueID:   item.ID,
				LeagueName: item.Name,
				HomeTeam:   mapFixtureTeam(m.Home),
				AwayTeam:   mapFixtureTeam(m.Away),
				UTCTime:    m.UTCTime,
				KickoffAt:  m.KickoffAt,
				Status:     fixture.StatusFromFlags(m.Started, m.Finished),
				Score:      m.Score,
				Round:      m.Round,
			})
		}
		return group
	})

	out := make([]fixture.LeagueMatches, 0, len(groups))
	for _, group := range groups {
		if group != nil {
			out = append(out, *group)
		}
	}
	return out
}

func mapFixtureTeam(side ExternalMatchSide) fixture.Team {
	return fixture.Team{ID: side.ID, Name: side.Name, ShortName: side.ShortName}
}

// sortMatchesByKickoff orders by kickoff. Matches without a usable time go last, in provider order.
func sortMatchesByKickoff(items []ExternalMatch) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].KickoffAt, items[j].KickoffAt
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.Before(b)
	})
}

func sameUTCDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
