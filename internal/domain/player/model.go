package player

// DefaultPosition is used when the provider has no primary position label.
const DefaultPosition = "Unknown"

// Profile is a player's season summary plus the matches where they scored or assisted.
// Matches is a filtered subset of the provider's recent matches, not a full history.
type Profile struct {
	ID                int64
	Name              string
	Photo             string
	TeamID            int64
	TeamName          string
	TeamLogo          string
	Position          string
	Country           string
	CountryCode       string
	Age               int
	Height            string
	ShirtNumber       *int
	SeasonGoals       int
	SeasonAssists     int
	SeasonAppearances int
	SeasonMinutes     int
	SeasonRating      *string
	Matches           []MatchEntry
}

type MatchEntry struct {
	MatchID          string
	Date             string
	LeagueID         int64
	LeagueName       string
	Stage            *string
	TeamName         string
	TeamID           int64
	OpponentName     string
	OpponentID       int64
	IsHome           bool
	HomeScore        int
	AwayScore        int
	Goals            int
	Assists          int
	MinutesPlayed    int
	Rating           *string
	IsTopRating      bool
	PlayerOfTheMatch bool
	YellowCards      int
	RedCards         int
	OnBench          bool
}

// Contributed reports whether the player scored or assisted in the match.
func (m MatchEntry) Contributed() bool {
	return m.Goals > 0 || m.Assists > 0
}
