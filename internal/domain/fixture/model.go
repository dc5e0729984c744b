package fixture

import "time"

// Status is the match lifecycle: upcoming, then live, then finished.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusFinished Status = "finished"
)

// StatusFromFlags maps the provider's started/finished booleans. Finished wins over started.
func StatusFromFlags(started, finished bool) Status {
	switch {
	case finished:
		return StatusFinished
	case started:
		return StatusLive
	default:
		return StatusUpcoming
	}
}

// Fixture represents one match of a competition.
type Fixture struct {
	ID        string
	Round     string
	HomeTeam  Team
	AwayTeam  Team
	UTCTime   string
	KickoffAt time.Time
	Status    Status
	// Score is empty while upcoming or when the provider omits it.
	Score string
}

type Team struct {
	ID        int64
	Name      string
	ShortName string
}

// LeagueMatches groups the matches of one competition for a single day.
type LeagueMatches struct {
	LeagueID      int64
	LeagueName    string
	LeagueCountry string
	Matches       []Match
}

type Match struct {
	MatchID    string
	LeagueID   int64
	LeagueName string
	HomeTeam   Team
	AwayTeam   Team
	UTCTime    string
	KickoffAt  time.Time
	Status     Status
	Score      string
	Round      string
}
