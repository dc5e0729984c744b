package playerstats

import "strings"

// Row is one line of a top scorers or top assists leaderboard.
type Row struct {
	Rank          int
	Player        Player
	Team          Team
	Goals         int
	Assists       int
	Penalties     int
	PenaltyMissed int
	Appearances   int
	Minutes       int
	Rating        *string
	YellowCards   int
	RedCards      int
}

type Player struct {
	ID          int64
	Name        string
	FirstName   string
	LastName    string
	Age         int
	Nationality string
	Photo       string
}

// Team carries an empty Name until team-name enrichment has run.
type Team struct {
	ID   int64
	Name string
	Logo string
}

// SplitName returns the first space separated token and the remainder.
func SplitName(name string) (first, last string) {
	parts := strings.Split(name, " ")
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}
