package teamstats

type Overview struct {
	ID         int64
	Name       string
	Logo       string
	Country    string
	LeagueID   int64
	LeagueName string
	SeasonID   int64
}

// PlayerStat is a leaderboard row narrowed to one team.
type PlayerStat struct {
	ID          int64
	Name        string
	Photo       string
	Value       int
	SubValue    int
	Appearances int
	Minutes     int
	Rank        int
	Country     string
}

type FormEntry struct {
	Result   string
	Opponent string
	Score    string
	Date     string
}

type NextMatch struct {
	Home       string
	Away       string
	Date       string
	Tournament string
}

type Report struct {
	Overview  Overview
	Scorers   []PlayerStat
	Assisters []PlayerStat
	Form      []FormEntry
	NextMatch *NextMatch
}
