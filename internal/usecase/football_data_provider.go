package usecase

import (
	"context"
	"time"
)

// StatCategory names a season-wide player leaderboard on the provider.
type StatCategory string

const (
	StatGoals      StatCategory = "goals"
	StatAssists    StatCategory = "goal_assist"
	StatMinutes    StatCategory = "mins_played"
	DefaultEntryID              = "0-0"
)

// Team leaderboard keys inside the team payload.
const (
	TeamLeaderboardGoals   = "goals_title"
	TeamLeaderboardAssists = "goal_assist_title"
)

// FootballDataProvider is the read-only view of the upstream sports-data API.
// Implementations are expected to cache by URL; every method may be called repeatedly.
type FootballDataProvider interface {
	FetchLeague(ctx context.Context, leagueID int64) (ExternalLeague, error)
	FetchSeasonLeaderboard(ctx context.Context, leagueID, seasonID int64, stat StatCategory) ([]ExternalStatEntry, error)
	FetchTeam(ctx context.Context, teamID int64) (ExternalTeam, error)
	FetchTeamLeaderboard(ctx context.Context, url string) ([]ExternalTeamStatEntry, error)
	// FetchPlayer loads a player profile. An empty entryID asks for the provider default season.
	FetchPlayer(ctx context.Context, playerID int64, entryID string) (ExternalPlayer, error)
}

type ExternalLeague struct {
	ID               int64
	Name             string
	Country          string
	SeasonCandidates []int64
	Standings        []ExternalStanding
	Matches          []ExternalMatch
}

type ExternalStanding struct {
	TeamID    int64
	TeamName  string
	ShortName string
	Rank      int
	Played    int
	Wins      int
	Draws     int
	Losses    int
	ScoresStr string
	GoalDiff  int
	Points    int
}

type ExternalMatch struct {
	ID        string
	Round     string
	Home      ExternalMatchSide
	Away      ExternalMatchSide
	UTCTime   string
	KickoffAt time.Time
	Started   bool
	Cancelled bool
	Finished  bool
	Score     string
}

type ExternalMatchSide struct {
	ID        int64
	Name      string
	ShortName string
}

type ExternalStatEntry struct {
	PlayerID int64
	TeamID   int64
	Name     string
	Value    int
	SubValue int
}

type ExternalTeam struct {
	ID              int64
	Name            string
	Country         string
	PrimaryLeagueID int64
	PrimarySeasonID int64
	// Leaderboards maps a localized title key to its fetch-all URL.
	Leaderboards map[string]string
	Form         []ExternalFormEntry
	NextMatch    *ExternalNextMatch
}

type ExternalFormEntry struct {
	Result   string
	Score    string
	UTCTime  string
	HomeTeam string
	AwayTeam string
}

type ExternalNextMatch struct {
	Home       string
	Away       string
	UTCTime    string
	Tournament string
}

type ExternalTeamStatEntry struct {
	PlayerID      int64
	Name          string
	TeamID        int64
	Value         int
	SubValue      int
	MinutesPlayed int
	MatchesPlayed int
	Rank          int
	CountryCode   string
}

type ExternalPlayer struct {
	ID       int64
	Name     string
	TeamID   int64
	TeamName string
	Position string
	Info     map[string]ExternalPlayerInfo
	// SeasonStats holds the main league counters keyed by localized title id.
	SeasonStats   map[string]float64
	RecentMatches []ExternalPlayerMatch
	SeasonEntries []ExternalSeasonEntry
	Shots         []ExternalShot
}

type ExternalPlayerInfo struct {
	Number   float64
	Fallback string
	IconID   string
}

type ExternalPlayerMatch struct {
	MatchID          string
	UTCTime          string
	LeagueID         int64
	LeagueName       string
	Stage            *string
	TeamID           int64
	TeamName         string
	OpponentID       int64
	OpponentName     string
	IsHome           bool
	HomeScore        int
	AwayScore        int
	MinutesPlayed    int
	Goals            int
	Assists          int
	YellowCards      int
	RedCards         int
	Rating           *string
	IsTopRating      bool
	PlayerOfTheMatch bool
	OnBench          bool
}

type ExternalSeasonEntry struct {
	TournamentID int64
	EntryID      string
}

type ExternalShot struct {
	EventType string
	Situation string
}
