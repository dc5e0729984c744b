package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-stats/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-stats/internal/domain/playerstats"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultPenaltyWorkers = 8

	shotSituationPenalty = "Penalty"
	shotEventGoal        = "Goal"
)

// EnrichmentService post-processes leaderboard rows with data from dependent lookups.
type EnrichmentService struct {
	provider       FootballDataProvider
	standings      *LeagueStandingService
	logger         *logging.Logger
	penaltyWorkers int
}

func NewEnrichmentService(provider FootballDataProvider, standings *LeagueStandingService, penaltyWorkers int, logger *logging.Logger) *EnrichmentService {
	if logger == nil {
		logger = logging.Default()
	}
	if penaltyWorkers <= 0 {
		penaltyWorkers = DefaultPenaltyWorkers
	}
	return &EnrichmentService{
		provider:       provider,
		standings:      standings,
		logger:         logger,
		penaltyWorkers: penaltyWorkers,
	}
}

// EnrichTeamNames fills team names from the competition's standings. Teams missing from the
// table, for example in a continental cup, get a "Team {id}" label.
func (s *EnrichmentService) EnrichTeamNames(ctx context.Context, rows []playerstats.Row, leagueID int64) ([]playerstats.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.EnrichTeamNames", attribute.Int64("league_id", leagueID))
	defer span.End()

	table, err := s.standings.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("enrich team names: %w", err)
	}
	return applyTeamNames(rows, leaguestanding.TeamNames(table)), nil
}

func applyTeamNames(rows []playerstats.Row, names map[int64]string) []playerstats.Row {
	out := make([]playerstats.Row, len(rows))
	for i, row := range rows {
		name, ok := names[row.Team.ID]
		if !ok || name == "" {
			name = fmt.Sprintf("Team %d", row.Team.ID)
		}
		row.Team.Name = name
		out[i] = row
	}
	return out
}

type penaltyCount struct {
	scored int
	missed int
}

// EnrichPenalties recounts penalties from each qualifying player's shot map. It never fails:
// a player whose lookup fails keeps the provider count with missed set to 0.
func (s *EnrichmentService) EnrichPenalties(ctx context.Context, rows []playerstats.Row, leagueID int64) []playerstats.Row {
	ctx, span := startUsecaseSpan(ctx, "usecase.EnrichmentService.EnrichPenalties", attribute.Int64("league_id", leagueID))
	defer span.End()

	out := make([]playerstats.Row, len(rows))
	copy(out, rows)

	targets := make([]int, 0, len(rows))
	for i, row := range rows {
		if row.Penalties > 0 {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 {
		return out
	}

	results := make([]penaltyCount, len(rows))
	for _, idx := range targets {
		results[idx] = penaltyCount{scored: rows[idx].Penalties}
	}

	pool, err := ants.NewPool(min(s.penaltyWorkers, len(targets)))
	if err != nil {
		s.logger.WarnContext(ctx, "penalty enrichment pool unavailable, keeping provider counts", "error", err)
		return applyPenalties(out, targets, results)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, idx := range targets {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			row := rows[idx]
			count, err := s.countPenalties(ctx, row.Player.ID, leagueID)
			if err != nil {
				s.logger.DebugContext(ctx, "penalty enrichment fallback",
					"league_id", leagueID,
					"player_id", row.Player.ID,
					"error", err,
				)
				return
			}
			results[idx] = count
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit penalty enrichment task failed", "player_id", rows[idx].Player.ID, "error", err)
		}
	}
	workers.Wait()

	return applyPenalties(out, targets, results)
}

func applyPenalties(rows []playerstats.Row, targets []int, results []penaltyCount) []playerstats.Row {
	for _, idx := range targets {
		rows[idx].Penalties = results[idx].scored
		rows[idx].PenaltyMissed = results[idx].missed
	}
	return rows
}

func (s *EnrichmentService) countPenalties(ctx context.Context, playerID, leagueID int64) (penaltyCount, error) {
	profile, err := s.provider.FetchPlayer(ctx, playerID, "")
	if err != nil {
		return penaltyCount{}, fmt.Errorf("fetch player profile: %w", err)
	}

	entryID := DefaultEntryID
	for _, entry := range profile.SeasonEntries {
		if entry.TournamentID == leagueID && entry.EntryID != "" {
			entryID = entry.EntryID
			break
		}
	}

	scoped, err := s.provider.FetchPlayer(ctx, playerID, entryID)
	if err != nil {
		return penaltyCount{}, fmt.Errorf("fetch player season entry=%s: %w", entryID, err)
	}
	if len(scoped.Shots) == 0 {
		return penaltyCount{}, fmt.Errorf("%w: empty shot map entry=%s", ErrNotFound, entryID)
	}

	var count penaltyCount
	for _, shot := range scoped.Shots {
		if shot.Situation != shotSituationPenalty {
			continue
		}
		if shot.EventType == shotEventGoal {
			count.scored++
		} else {
			count.missed++
		}
	}
	return count, nil
}
