package leaguestanding

import (
	"strconv"
	"strings"
)

// Standing represents a league table row for one team. GoalsDiff is taken from the
// provider as is and may disagree with GoalsFor - GoalsAgainst.
type Standing struct {
	Rank         int
	Team         Team
	Points       int
	Played       int
	Win          int
	Draw         int
	Lose         int
	GoalsFor     int
	GoalsAgainst int
	GoalsDiff    int
	Form         string
}

type Team struct {
	ID   int64
	Name string
	Logo string
}

// ParseScores splits a compact "GF-GA" string. Missing or malformed parts read as 0.
func ParseScores(raw string) (goalsFor, goalsAgainst int) {
	parts := strings.Split(raw, "-")
	goalsFor = atoiOrZero(parts[0])
	if len(parts) > 1 {
		goalsAgainst = atoiOrZero(parts[1])
	}
	return goalsFor, goalsAgainst
}

func atoiOrZero(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

// TeamNames indexes standings by team id.
func TeamNames(rows []Standing) map[int64]string {
	out := make(map[int64]string, len(rows))
	for _, row := range rows {
		out[row.Team.ID] = row.Team.Name
	}
	return out
}
