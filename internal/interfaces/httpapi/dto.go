package httpapi

import (
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/asset"
	"github.com/riskibarqy/football-stats/internal/domain/competition"
	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-stats/internal/domain/player"
	"github.com/riskibarqy/football-stats/internal/domain/playerstats"
	"github.com/riskibarqy/football-stats/internal/domain/teamstats"
	"github.com/riskibarqy/football-stats/internal/usecase"
)

// isoTimeLayout matches JavaScript's Date.toISOString for UTC times.
const isoTimeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatISOTime(t time.Time) string {
	return t.UTC().Format(isoTimeLayout)
}

type competitionDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Flag    string `json:"flag"`
}

type broadcastersDTO struct {
	Poland []string `json:"poland"`
	UK     []string `json:"uk"`
	USA    []string `json:"usa"`
}

type competitionDetailDTO struct {
	competitionDTO
	Logo         string          `json:"logo"`
	Broadcasters broadcastersDTO `json:"broadcasters"`
}

type leagueStatsDTO struct {
	League      competitionDTO `json:"league"`
	TopScorers  []topScorerDTO `json:"topScorers"`
	TopAssists  []topScorerDTO `json:"topAssists"`
	Standings   []standingDTO  `json:"standings"`
	Fixtures    []fixtureDTO   `json:"fixtures"`
	LastUpdated string         `json:"lastUpdated"`
}

type scorerPlayerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
}

type teamRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type topScorerDTO struct {
	Rank          int             `json:"rank"`
	Player        scorerPlayerDTO `json:"player"`
	Team          teamRefDTO      `json:"team"`
	Goals         int             `json:"goals"`
	Assists       int             `json:"assists"`
	Penalties     int             `json:"penalties"`
	PenaltyMissed int             `json:"penaltyMissed"`
	Appearances   int             `json:"appearances"`
	Minutes       int             `json:"minutes"`
	Rating        *string         `json:"rating"`
	YellowCards   int             `json:"yellowCards"`
	RedCards      int             `json:"redCards"`
}

type standingDTO struct {
	Rank         int        `json:"rank"`
	Team         teamRefDTO `json:"team"`
	Points       int        `json:"points"`
	Played       int        `json:"played"`
	Win          int        `json:"win"`
	Draw         int        `json:"draw"`
	Lose         int        `json:"lose"`
	GoalsFor     int        `json:"goalsFor"`
	GoalsAgainst int        `json:"goalsAgainst"`
	GoalsDiff    int        `json:"goalsDiff"`
	Form         string     `json:"form"`
}

type fixtureTeamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type fixtureDTO struct {
	ID       string         `json:"id"`
	Round    string         `json:"round"`
	HomeTeam fixtureTeamDTO `json:"homeTeam"`
	AwayTeam fixtureTeamDTO `json:"awayTeam"`
	UTCTime  string         `json:"utcTime"`
	Status   string         `json:"status"`
	Score    string         `json:"score,omitempty"`
}

type todayLeagueDTO struct {
	LeagueID      int64           `json:"leagueId"`
	LeagueName    string          `json:"leagueName"`
	LeagueCountry string          `json:"leagueCountry"`
	Matches       []todayMatchDTO `json:"matches"`
}

type todayMatchDTO struct {
	MatchID    string         `json:"matchId"`
	LeagueID   int64          `json:"leagueId"`
	LeagueName string         `json:"leagueName"`
	HomeTeam   fixtureTeamDTO `json:"homeTeam"`
	AwayTeam   fixtureTeamDTO `json:"awayTeam"`
	UTCTime    string         `json:"utcTime"`
	Status     string         `json:"status"`
	Score      string         `json:"score,omitempty"`
	Round      string         `json:"round"`
}

type teamStatsDTO struct {
	Overview    teamOverviewDTO   `json:"overview"`
	Scorers     []teamPlayerDTO   `json:"scorers"`
	Assisters   []teamPlayerDTO   `json:"assisters"`
	Form        []teamFormDTO     `json:"form"`
	NextMatch   *teamNextMatchDTO `json:"nextMatch"`
	LastUpdated string            `json:"lastUpdated"`
}

type teamOverviewDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	Country    string `json:"country"`
	LeagueID   int64  `json:"leagueId"`
	LeagueName string `json:"leagueName"`
	SeasonID   int64  `json:"seasonId"`
}

type teamPlayerDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	Value       int    `json:"value"`
	SubValue    int    `json:"subValue"`
	Appearances int    `json:"appearances"`
	Minutes     int    `json:"minutes"`
	Rank        int    `json:"rank"`
	Country     string `json:"country"`
}

type teamFormDTO struct {
	Result   string `json:"result"`
	Opponent string `json:"opponent"`
	Score    string `json:"score"`
	Date     string `json:"date"`
}

type teamNextMatchDTO struct {
	Home       string `json:"home"`
	Away       string `json:"away"`
	Date       string `json:"date"`
	Tournament string `json:"tournament"`
}

type playerProfileDTO struct {
	ID                int64                 `json:"id"`
	Name              string                `json:"name"`
	Photo             string                `json:"photo"`
	TeamID            int64                 `json:"teamId"`
	TeamName          string                `json:"teamName"`
	TeamLogo          string                `json:"teamLogo"`
	Position          string                `json:"position"`
	Country           string                `json:"country"`
	CountryCode       string                `json:"countryCode"`
	Age               int                   `json:"age"`
	Height            string                `json:"height"`
	ShirtNumber       *int                  `json:"shirtNumber"`
	SeasonGoals       int                   `json:"seasonGoals"`
	SeasonAssists     int                   `json:"seasonAssists"`
	SeasonAppearances int                   `json:"seasonAppearances"`
	SeasonMinutes     int                   `json:"seasonMinutes"`
	SeasonRating      *string               `json:"seasonRating"`
	Matches           []playerMatchEntryDTO `json:"matches"`
}

type playerMatchEntryDTO struct {
	MatchID          string  `json:"matchId"`
	Date             string  `json:"date"`
	LeagueID         int64   `json:"leagueId"`
	LeagueName       string  `json:"leagueName"`
	Stage            *string `json:"stage"`
	TeamName         string  `json:"teamName"`
	TeamID           int64   `json:"teamId"`
	OpponentName     string  `json:"opponentName"`
	OpponentID       int64   `json:"opponentId"`
	IsHome           bool    `json:"isHome"`
	HomeScore        int     `json:"homeScore"`
	AwayScore        int     `json:"awayScore"`
	Goals            int     `json:"goals"`
	Assists          int     `json:"assists"`
	MinutesPlayed    int     `json:"minutesPlayed"`
	Rating           *string `json:"rating"`
	IsTopRating      bool    `json:"isTopRating"`
	PlayerOfTheMatch bool    `json:"playerOfTheMatch"`
	YellowCards      int     `json:"yellowCards"`
	RedCards         int     `json:"redCards"`
	OnBench          bool    `json:"onBench"`
}

func competitionToDTO(v competition.Competition) competitionDTO {
	return competitionDTO{ID: v.ID, Name: v.Name, Country: v.Country, Flag: v.Flag}
}

func competitionDetailToDTO(v competition.Competition) competitionDetailDTO {
	b := competition.BroadcastersFor(v.ID)
	return competitionDetailDTO{
		competitionDTO: competitionToDTO(v),
		Logo:           asset.LeagueLogoURL(v.ID),
		Broadcasters:   broadcastersDTO{Poland: b.Poland, UK: b.UK, USA: b.USA},
	}
}

func leagueViewToDTO(v usecase.LeagueView) leagueStatsDTO {
	out := leagueStatsDTO{
		League:      competitionToDTO(v.League),
		TopScorers:  topScorersToDTO(v.TopScorers),
		TopAssists:  topScorersToDTO(v.TopAssists),
		Standings:   make([]standingDTO, 0, len(v.Standings)),
		Fixtures:    make([]fixtureDTO, 0, len(v.Fixtures)),
		LastUpdated: formatISOTime(v.LastUpdated),
	}
	for _, s := range v.Standings {
		out.Standings = append(out.Standings, standingToDTO(s))
	}
	for _, f := range v.Fixtures {
		out.Fixtures = append(out.Fixtures, fixtureToDTO(f))
	}
	return out
}

func topScorersToDTO(rows []playerstats.Row) []topScorerDTO {
	out := make([]topScorerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, topScorerDTO{
			Rank: row.Rank,
			Player: scorerPlayerDTO{
				ID:          row.Player.ID,
				Name:        row.Player.Name,
				FirstName:   row.Player.FirstName,
				LastName:    row.Player.LastName,
				Age:         row.Player.Age,
				Nationality: row.Player.Nationality,
				Photo:       row.Player.Photo,
			},
			Team:          teamRefDTO{ID: row.Team.ID, Name: row.Team.Name, Logo: row.Team.Logo},
			Goals:         row.Goals,
			Assists:       row.Assists,
			Penalties:     row.Penalties,
			PenaltyMissed: row.PenaltyMissed,
			Appearances:   row.Appearances,
			Minutes:       row.Minutes,
			Rating:        row.Rating,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
		})
	}
	return out
}

func standingToDTO(v leaguestanding.Standing) standingDTO {
	return standingDTO{
		Rank:         v.Rank,
		Team:         teamRefDTO{ID: v.Team.ID, Name: v.Team.Name, Logo: v.Team.Logo},
		Points:       v.Points,
		Played:       v.Played,
		Win:          v.Win,
		Draw:         v.Draw,
		Lose:         v.Lose,
		GoalsFor:     v.GoalsFor,
		GoalsAgainst: v.GoalsAgainst,
		GoalsDiff:    v.GoalsDiff,
		Form:         v.Form,
	}
}

func fixtureTeamToDTO(v fixture.Team) fixtureTeamDTO {
	return fixtureTeamDTO{ID: v.ID, Name: v.Name, ShortName: v.ShortName}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:       v.ID,
		Round:    v.Round,
		HomeTeam: fixtureTeamToDTO(v.HomeTeam),
		AwayTeam: fixtureTeamToDTO(v.AwayTeam),
		UTCTime:  v.UTCTime,
		Status:   string(v.Status),
		Score:    v.Score,
	}
}

func todayMatchesToDTO(groups []fixture.LeagueMatches) []todayLeagueDTO {
	out := make([]todayLeagueDTO, 0, len(groups))
	for _, g := range groups {
		item := todayLeagueDTO{
			LeagueID:      g.LeagueID,
			LeagueName:    g.LeagueName,
			LeagueCountry: g.LeagueCountry,
			Matches:       make([]todayMatchDTO, 0, len(g.Matches)),
		}
		for _, m := range g.Matches {
			item.Matches = append(item.Matches, todayMatchDTO{
				MatchID:    m.MatchID,
				LeagueID:   m.LeagueID,
				LeagueName: m.LeagueName,
				HomeTeam:   fixtureTeamToDTO(m.HomeTeam),
				AwayTeam:   fixtureTeamToDTO(m.AwayTeam),
				UTCTime:    m.UTCTime,
				Status:     string(m.Status),
				Score:      m.Score,
				Round:      m.Round,
			})
		}
		out = append(out, item)
	}
	return out
}

func teamReportToDTO(v teamstats.Report, now time.Time) teamStatsDTO {
	out := teamStatsDTO{
		Overview: teamOverviewDTO{
			ID:         v.Overview.ID,
			Name:       v.Overview.Name,
			Logo:       v.Overview.Logo,
			Country:    v.Overview.Country,
			LeagueID:   v.Overview.LeagueID,
			LeagueName: v.Overview.LeagueName,
			SeasonID:   v.Overview.SeasonID,
		},
		Scorers:     teamPlayersToDTO(v.Scorers),
		Assisters:   teamPlayersToDTO(v.Assisters),
		Form:        make([]teamFormDTO, 0, len(v.Form)),
		LastUpdated: formatISOTime(now),
	}
	for _, f := range v.Form {
		out.Form = append(out.Form, teamFormDTO{Result: f.Result, Opponent: f.Opponent, Score: f.Score, Date: f.Date})
	}
	if nm := v.NextMatch; nm != nil {
		out.NextMatch = &teamNextMatchDTO{Home: nm.Home, Away: nm.Away, Date: nm.Date, Tournament: nm.Tournament}
	}
	return out
}

func teamPlayersToDTO(rows []teamstats.PlayerStat) []teamPlayerDTO {
	out := make([]teamPlayerDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamPlayerDTO{
			ID:          row.ID,
			Name:        row.Name,
			Photo:       row.Photo,
			Value:       row.Value,
			SubValue:    row.SubValue,
			Appearances: row.Appearances,
			Minutes:     row.Minutes,
			Rank:        row.Rank,
			Country:     row.Country,
		})
	}
	return out
}

func playerProfileToDTO(v player.Profile) playerProfileDTO {
	out := playerProfileDTO{
		ID:                v.ID,
		Name:              v.Name,
		Photo:             v.Photo,
		TeamID:            v.TeamID,
		TeamName:          v.TeamName,
		TeamLogo:          v.TeamLogo,
		Position:          v.Position,
		Country:           v.Country,
		CountryCode:       v.CountryCode,
		Age:               v.Age,
		Height:            v.Height,
		ShirtNumber:       v.ShirtNumber,
		SeasonGoals:       v.SeasonGoals,
		SeasonAssists:     v.SeasonAssists,
		SeasonAppearances: v.SeasonAppearances,
		SeasonMinutes:     v.SeasonMinutes,
		SeasonRating:      v.SeasonRating,
		Matches:           make([]playerMatchEntryDTO, 0, len(v.Matches)),
	}
	for _, m := range v.Matches {
		out.Matches = append(out.Matches, playerMatchEntryDTO{
			MatchID:          m.MatchID,
			Date:             m.Date,
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
		})
	}
	return out
}
