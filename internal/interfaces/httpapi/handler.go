package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

const (
	statsCacheControl = "public, s-maxage=600, stale-while-revalidate=60"
	todayCacheControl = "public, s-maxage=300, stale-while-revalidate=600"
)

type Handler struct {
	leagueViewService    *usecase.LeagueViewService
	teamStatsService     *usecase.TeamStatsService
	playerProfileService *usecase.PlayerProfileService
	fixtureService       *usecase.FixtureService
	logger               *logging.Logger
	validator            *validator.Validate
	now                  func() time.Time
}

func NewHandler(
	leagueViewService *usecase.LeagueViewService,
	teamStatsService *usecase.TeamStatsService,
	playerProfileService *usecase.PlayerProfileService,
	fixtureService *usecase.FixtureService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueViewService:    leagueViewService,
		teamStatsService:     teamStatsService,
		playerProfileService: playerProfileService,
		fixtureService:       fixtureService,
		logger:               logger,
		validator:            validator.New(),
		now:                  time.Now,
	}
}

type leagueStatsQuery struct {
	League int64 `validate:"required,gt=0"`
}

type teamStatsQuery struct {
	Team int64 `validate:"required,gt=0"`
}

type playerStatsQuery struct {
	ID int64 `validate:"required,gt=0"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryID reads a required positive integer query parameter.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: query parameter %q is required", usecase.ErrInvalidInput, name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: query parameter %q must be an integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	items := competition.All()
	out := make([]competitionDetailDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionDetailToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) LeagueStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueStats")
	defer span.End()

	leagueID, err := queryID(r, "league")
	if err == nil {
		err = h.validateRequest(ctx, leagueStatsQuery{League: leagueID})
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.leagueViewService.Build(ctx, leagueID)
	if err != nil {
		h.logger.ErrorContext(ctx, "build league stats failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeCached(ctx, w, statsCacheControl, leagueViewToDTO(view))
}

func (h *Handler) TeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamStats")
	defer span.End()

	teamID, err := queryID(r, "team")
	if err == nil {
		err = h.validateRequest(ctx, teamStatsQuery{Team: teamID})
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.teamStatsService.Report(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get team stats failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeCached(ctx, w, statsCacheControl, teamReportToDTO(report, h.now()))
}

func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayerStats")
	defer span.End()

	playerID, err := queryID(r, "id")
	if err == nil {
		err = h.validateRequest(ctx, playerStatsQuery{ID: playerID})
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.playerProfileService.Profile(ctx, playerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(profile))
}

// TodayMatches always answers 200; competitions that fail to load are simply absent.
func (h *Handler) TodayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TodayMatches")
	defer span.End()

	groups := h.fixtureService.TodayMatches(ctx, h.now())
	writeCached(ctx, w, todayCacheControl, todayMatchesToDTO(groups))
}
