package fotmob

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/riskibarqy/football-stats/internal/usecase"
)

var _ usecase.FootballDataProvider = (*Client)(nil)

func idQuery(id int64) url.Values {
	return url.Values{"id": []string{strconv.FormatInt(id, 10)}}
}

func (c *Client) FetchLeague(ctx context.Context, leagueID int64) (usecase.ExternalLeague, error) {
	if leagueID <= 0 {
		return usecase.ExternalLeague{}, fmt.Errorf("%w: league id must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload leaguePayload
	if err := c.getJSON(ctx, familyLeague, c.endpoint("/leagues", idQuery(leagueID)), &payload); err != nil {
		return usecase.ExternalLeague{}, fmt.Errorf("fetch league league_id=%d: %w", leagueID, err)
	}
	return mapLeague(payload), nil
}

func (c *Client) FetchSeasonLeaderboard(ctx context.Context, leagueID, seasonID int64, stat usecase.StatCategory) ([]usecase.ExternalStatEntry, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(leagueID, 10))
	query.Set("season", strconv.FormatInt(seasonID, 10))
	query.Set("type", "players")
	query.Set("stat", string(stat))

	var payload deepStatsPayload
	if err := c.getJSON(ctx, familyLeaderboard, c.endpoint("/leagueseasondeepstats", query), &payload); err != nil {
		return nil, fmt.Errorf("fetch leaderboard league_id=%d season_id=%d stat=%s: %w", leagueID, seasonID, stat, err)
	}

	out := make([]usecase.ExternalStatEntry, 0, len(payload.StatsData))
	for _, item := range payload.StatsData {
		out = append(out, usecase.ExternalStatEntry{
			PlayerID: item.ID.Int64(),
			TeamID:   item.TeamID.Int64(),
			Name:     item.Name,
			Value:    item.StatValue.Data.Value.Int(),
			SubValue: item.SubstatValue.Data.Value.Int(),
		})
	}
	return out, nil
}

func (c *Client) FetchTeam(ctx context.Context, teamID int64) (usecase.ExternalTeam, error) {
	if teamID <= 0 {
		return usecase.ExternalTeam{}, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	var payload teamPayload
	if err := c.getJSON(ctx, familyTeam, c.endpoint("/teams", idQuery(teamID)), &payload); err != nil {
		return usecase.ExternalTeam{}, fmt.Errorf("fetch team team_id=%d: %w", teamID, err)
	}
	return mapTeam(payload), nil
}

func (c *Client) FetchTeamLeaderboard(ctx context.Context, rawURL string) ([]usecase.ExternalTeamStatEntry, error) {
	fullURL, err := c.resolve(rawURL)
	if err != nil {
		return nil, err
	}

	var payload teamLeaderboardPayload
	if err := c.getJSON(ctx, familyTeamLeaderboard, fullURL, &payload); err != nil {
		return nil, fmt.Errorf("fetch team leaderboard: %w", err)
	}
	if len(payload.TopLists) == 0 {
		return []usecase.ExternalTeamStatEntry{}, nil
	}

	rows := payload.TopLists[0].StatList
	out := make([]usecase.ExternalTeamStatEntry, 0, len(rows))
	for _, item := range rows {
		out = append(out, usecase.ExternalTeamStatEntry{
			PlayerID:      item.ParticipantID.Int64(),
			Name:          item.ParticipantName,
			TeamID:        item.TeamID.Int64(),
			Value:         item.StatValue.Int(),
			SubValue:      item.SubStatValue.Int(),
			MinutesPlayed: item.MinutesPlayed.Int(),
			MatchesPlayed: item.MatchesPlayed.Int(),
			Rank:          item.Rank.Int(),
			CountryCode:   item.CountryCode,
		})
	}
	return out, nil
}

func (c *Client) FetchPlayer(ctx context.Context, playerID int64, entryID string) (usecase.ExternalPlayer, error) {
	if playerID <= 0 {
		return usecase.ExternalPlayer{}, fmt.Errorf("%w: player id must be greater than zero", usecase.ErrInvalidInput)
	}

	query := idQuery(playerID)
	if entryID != "" {
		query.Set("season", entryID)
	}

	var payload playerPayload
	if err := c.getJSON(ctx, familyPlayer, c.endpoint("/playerData", query), &payload); err != nil {
		return usecase.ExternalPlayer{}, fmt.Errorf("fetch player player_id=%d: %w", playerID, err)
	}
	return mapPlayer(payload), nil
}

func mapLeague(payload leaguePayload) usecase.ExternalLeague {
	out := usecase.ExternalLeague{
		ID:        payload.Details.ID.Int64(),
		Name:      payload.Details.Name,
		Country:   payload.Details.Country.String(),
		Standings: []usecase.ExternalStanding{},
		Matches:   []usecase.ExternalMatch{},
	}

	if payload.Stats.Set {
		for _, link := range payload.Stats.Data.SeasonStatLinks {
			out.SeasonCandidates = append(out.SeasonCandidates, link.TournamentID.Int64())
		}
	}

	if len(payload.Table) > 0 && payload.Table[0].Data.Set && payload.Table[0].Data.Data.Table.Set {
		rows := payload.Table[0].Data.Data.Table.Data.All
		out.Standings = make([]usecase.ExternalStanding, 0, len(rows))
		for _, row := range rows {
			out.Standings = append(out.Standings, usecase.ExternalStanding{
				TeamID:    row.ID.Int64(),
				TeamName:  row.Name,
				ShortName: row.ShortName,
				Rank:      row.Idx.Int(),
				Played:    row.Played.Int(),
				Wins:      row.Wins.Int(),
				Draws:     row.Draws.Int(),
				Losses:    row.Losses.Int(),
				ScoresStr: row.ScoresStr,
				GoalDiff:  row.GoalConDiff.Int(),
				Points:    row.Pts.Int(),
			})
		}
	}

	if payload.Fixtures.Set {
		matches := payload.Fixtures.Data.AllMatches
		out.Matches = make([]usecase.ExternalMatch, 0, len(matches))
		for _, m := range matches {
			out.Matches = append(out.Matches, usecase.ExternalMatch{
				ID:        m.ID.String(),
				Round:     m.Round.String(),
				Home:      usecase.ExternalMatchSide{ID: m.Home.ID.Int64(), Name: m.Home.Name, ShortName: m.Home.ShortName},
				Away:      usecase.ExternalMatchSide{ID: m.Away.ID.Int64(), Name: m.Away.Name, ShortName: m.Away.ShortName},
				UTCTime:   m.Status.UTCTime,
				KickoffAt: parseUTCTime(m.Status.UTCTime),
				Started:   m.Status.Started,
				Cancelled: m.Status.Cancelled,
				Finished:  m.Status.Finished,
				Score:     m.Status.ScoreStr,
			})
		}
	}

	return out
}

func mapTeam(payload teamPayload) usecase.ExternalTeam {
	out := usecase.ExternalTeam{
		ID:           payload.Details.ID.Int64(),
		Name:         payload.Details.Name,
		Country:      payload.Details.Country.String(),
		Leaderboards: map[string]string{},
		Form:         []usecase.ExternalFormEntry{},
	}

	if payload.Stats.Set {
		stats := payload.Stats.Data
		out.PrimaryLeagueID = stats.PrimaryLeagueID.Int64()
		out.PrimarySeasonID = stats.PrimarySeasonID.Int64()
		for _, item := range stats.Players {
			if item.LocalizedTitleID == "" || item.FetchAllURL == "" {
				continue
			}
			// first occurrence wins
			if _, exists := out.Leaderboards[item.LocalizedTitleID]; !exists {
				out.Leaderboards[item.LocalizedTitleID] = item.FetchAllURL
			}
		}
	}

	if payload.Overview.Set {
		overview := payload.Overview.Data
		for _, f := range overview.TeamForm {
			out.Form = append(out.Form, usecase.ExternalFormEntry{
				Result:   f.ResultString,
				Score:    f.Score.String(),
				UTCTime:  f.TooltipText.UTCTime,
				HomeTeam: f.TooltipText.HomeTeam,
				AwayTeam: f.TooltipText.AwayTeam,
			})
		}
		if overview.NextMatch.Set {
			nm := overview.NextMatch.Data
			out.NextMatch = &usecase.ExternalNextMatch{
				Home:       nm.Home.Name,
				Away:       nm.Away.Name,
				UTCTime:    nm.Status.UTCTime,
				Tournament: nm.Tournament.Name,
			}
		}
	}

	return out
}

func mapPlayer(payload playerPayload) usecase.ExternalPlayer {
	out := usecase.ExternalPlayer{
		ID:            payload.ID.Int64(),
		Name:          payload.Name,
		TeamID:        payload.PrimaryTeam.TeamID.Int64(),
		TeamName:      payload.PrimaryTeam.TeamName,
		Info:          make(map[string]usecase.ExternalPlayerInfo, len(payload.PlayerInformation)),
		SeasonStats:   map[string]float64{},
		RecentMatches: make([]usecase.ExternalPlayerMatch, 0, len(payload.RecentMatches)),
		Shots:         []usecase.ExternalShot{},
	}

	if pd := payload.PositionDescription; pd.Set && pd.Data.PrimaryPosition.Set {
		out.Position = pd.Data.PrimaryPosition.Data.Label
	}

	for _, info := range payload.PlayerInformation {
		if info.TranslationKey == "" {
			continue
		}
		if _, exists := out.Info[info.TranslationKey]; exists {
			continue
		}
		item := usecase.ExternalPlayerInfo{
			Number:   float64(info.Value.NumberValue),
			Fallback: info.Value.Fallback.String(),
		}
		if info.Icon.Set {
			item.IconID = info.Icon.Data.ID
		}
		out.Info[info.TranslationKey] = item
	}

	if payload.MainLeague.Set {
		for _, stat := range payload.MainLeague.Data.Stats {
			if _, exists := out.SeasonStats[stat.LocalizedTitleID]; exists {
				continue
			}
			out.SeasonStats[stat.LocalizedTitleID] = float64(stat.Value)
		}
	}

	for _, m := range payload.RecentMatches {
		var stage *string
		if m.Stage.Set {
			s := m.Stage.Data
			stage = &s
		}
		out.RecentMatches = append(out.RecentMatches, usecase.ExternalPlayerMatch{
			MatchID:          m.ID.String(),
			UTCTime:          m.MatchDate.UTCTime,
			LeagueID:         m.LeagueID.Int64(),
			LeagueName:       m.LeagueName,
			Stage:            stage,
			TeamID:           m.TeamID.Int64(),
			TeamName:         m.TeamName,
			OpponentID:       m.OpponentTeamID.Int64(),
			OpponentName:     m.OpponentTeamName,
			IsHome:           m.IsHomeTeam,
			HomeScore:        m.HomeScore.Int(),
			AwayScore:        m.AwayScore.Int(),
			MinutesPlayed:    m.MinutesPlayed.Int(),
			Goals:            m.Goals.Int(),
			Assists:          m.Assists.Int(),
			YellowCards:      m.YellowCards.Int(),
			RedCards:         m.RedCards.Int(),
			Rating:           m.RatingProps.Rating.Value,
			IsTopRating:      m.RatingProps.IsTopRating,
			PlayerOfTheMatch: m.PlayerOfTheMatch,
			OnBench:          m.OnBench,
		})
	}

	if len(payload.StatSeasons) > 0 {
		for _, t := range payload.StatSeasons[0].Tournaments {
			out.SeasonEntries = append(out.SeasonEntries, usecase.ExternalSeasonEntry{
				TournamentID: t.TournamentID.Int64(),
				EntryID:      t.EntryID.String(),
			})
		}
	}

	if payload.FirstSeasonStats.Set {
		for _, shot := range payload.FirstSeasonStats.Data.Shotmap {
			out.Shots = append(out.Shots, usecase.ExternalShot{EventType: shot.EventType, Situation: shot.Situation})
		}
	}

	return out
}

func parseUTCTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}
