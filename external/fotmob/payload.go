package fotmob

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

var jsonNull = []byte("null")

// optional decodes T when the field is present and well formed. A field of an
// unexpected shape is treated as absent instead of failing the whole payload.
type optional[T any] struct {
	Data T
	Set  bool
}

func (o *optional[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		o.Set = false
		return nil
	}

	var direct T
	if err := sonic.Unmarshal(trimmed, &direct); err != nil {
		o.Set = false
		return nil
	}
	o.Data = direct
	o.Set = true
	return nil
}

// flexInt accepts numbers, numeric strings and null. Anything else reads as 0.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	*f = 0
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		*f = flexInt(v)
		return nil
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		*f = flexInt(math.Round(v))
	}
	return nil
}

func (f flexInt) Int() int     { return int(f) }
func (f flexInt) Int64() int64 { return int64(f) }

// flexFloat is flexInt without rounding.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = 0
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		*f = flexFloat(v)
	}
	return nil
}

// flexString accepts strings and numbers; numbers are formatted the shortest way.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	*f = ""
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		*f = flexString(s)
		return nil
	}
	if v, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
		*f = flexString(formatNumber(v))
	}
	return nil
}

func (f flexString) String() string { return string(f) }

// rating is a match rating that the provider sends as a number or a string.
// Numeric 0 and the empty string mean no rating.
type rating struct {
	Value *string
}

func (r *rating) UnmarshalJSON(data []byte) error {
	r.Value = nil
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		if s != "" {
			r.Value = &s
		}
		return nil
	}
	v, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil || v == 0 {
		return nil
	}
	s := formatNumber(v)
	r.Value = &s
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type namedID struct {
	ID      flexInt    `json:"id"`
	Name    string     `json:"name"`
	Country flexString `json:"country"`
}

type leaguePayload struct {
	Details  namedID                      `json:"details"`
	Table    []leagueTable                `json:"table"`
	Stats    optional[leagueStats]        `json:"stats"`
	Fixtures optional[leagueFixtureGroup] `json:"fixtures"`
}

type leagueTable struct {
	Data optional[struct {
		Table optional[struct {
			All []standingRow `json:"all"`
		}] `json:"table"`
	}] `json:"data"`
}

type standingRow struct {
	ID          flexInt `json:"id"`
	Name        string  `json:"name"`
	ShortName   string  `json:"shortName"`
	Played      flexInt `json:"played"`
	Wins        flexInt `json:"wins"`
	Draws       flexInt `json:"draws"`
	Losses      flexInt `json:"losses"`
	ScoresStr   string  `json:"scoresStr"`
	GoalConDiff flexInt `json:"goalConDiff"`
	Pts         flexInt `json:"pts"`
	Idx         flexInt `json:"idx"`
}

type leagueStats struct {
	SeasonStatLinks []struct {
		TournamentID flexInt `json:"TournamentId"`
		Name         string  `json:"Name"`
	} `json:"seasonStatLinks"`
}

type leagueFixtureGroup struct {
	AllMatches []matchRow `json:"allMatches"`
}

type matchRow struct {
	ID     flexString `json:"id"`
	Round  flexString `json:"round"`
	Home   matchSide  `json:"home"`
	Away   matchSide  `json:"away"`
	Status struct {
		UTCTime   string `json:"utcTime"`
		Started   bool   `json:"started"`
		Cancelled bool   `json:"cancelled"`
		Finished  bool   `json:"finished"`
		ScoreStr  string `json:"scoreStr"`
	} `json:"status"`
}

type matchSide struct {
	ID        flexInt `json:"id"`
	Name      string  `json:"name"`
	ShortName string  `json:"shortName"`
}

type deepStatsPayload struct {
	StatsData []struct {
		ID           flexInt             `json:"id"`
		TeamID       flexInt             `json:"teamId"`
		Name         string              `json:"name"`
		StatValue    optional[statValue] `json:"statValue"`
		SubstatValue optional[statValue] `json:"substatValue"`
	} `json:"statsData"`
}

type statValue struct {
	Value flexInt `json:"value"`
}

type teamPayload struct {
	Details  namedID                `json:"details"`
	Stats    optional[teamStats]    `json:"stats"`
	Overview optional[teamOverview] `json:"overview"`
}

type teamStats struct {
	PrimaryLeagueID flexInt `json:"primaryLeagueId"`
	PrimarySeasonID flexInt `json:"primarySeasonId"`
	Players         []struct {
		FetchAllURL      string `json:"fetchAllUrl"`
		LocalizedTitleID string `json:"localizedTitleId"`
	} `json:"players"`
}

type teamOverview struct {
	TeamForm []struct {
		ResultString string     `json:"resultString"`
		Score        flexString `json:"score"`
		TooltipText  struct {
			UTCTime  string `json:"utcTime"`
			HomeTeam string `json:"homeTeam"`
			AwayTeam string `json:"awayTeam"`
		} `json:"tooltipText"`
	} `json:"teamForm"`
	NextMatch optional[struct {
		Home   struct{ Name string `json:"name"` } `json:"home"`
		Away   struct{ Name string `json:"name"` } `json:"away"`
		Status struct {
			UTCTime string `json:"utcTime"`
		} `json:"status"`
		Tournament struct{ Name string `json:"name"` } `json:"tournament"`
	}] `json:"nextMatch"`
}

type teamLeaderboardPayload struct {
	TopLists []struct {
		StatList []struct {
			ParticipantName string  `json:"ParticipantName"`
			ParticipantID   flexInt `json:"ParticiantId"`
			TeamID          flexInt `json:"TeamId"`
			StatValue       flexInt `json:"StatValue"`
			SubStatValue    flexInt `json:"SubStatValue"`
			MinutesPlayed   flexInt `json:"MinutesPlayed"`
			MatchesPlayed   flexInt `json:"MatchesPlayed"`
			Rank            flexInt `json:"Rank"`
			CountryCode     string  `json:"ParticipantCountryCode"`
		} `json:"StatList"`
	} `json:"TopLists"`
}

type playerPayload struct {
	ID          flexInt `json:"id"`
	Name        string  `json:"name"`
	PrimaryTeam struct {
		TeamID   flexInt `json:"teamId"`
		TeamName string  `json:"teamName"`
	} `json:"primaryTeam"`
	PositionDescription optional[struct {
		PrimaryPosition optional[struct {
			Label string `json:"label"`
		}] `json:"primaryPosition"`
	}] `json:"positionDescription"`
	PlayerInformation []struct {
		TranslationKey string `json:"translationKey"`
		Value          struct {
			NumberValue flexFloat  `json:"numberValue"`
			Fallback    flexString `json:"fallback"`
		} `json:"value"`
		Icon optional[struct {
			ID string `json:"id"`
		}] `json:"icon"`
	} `json:"playerInformation"`
	MainLeague optional[struct {
		Stats []struct {
			LocalizedTitleID string    `json:"localizedTitleId"`
			Value            flexFloat `json:"value"`
		} `json:"stats"`
	}] `json:"mainLeague"`
	RecentMatches []recentMatchRow `json:"recentMatches"`
	StatSeasons   []struct {
		Tournaments []struct {
			TournamentID flexInt    `json:"tournamentId"`
			EntryID      flexString `json:"entryId"`
		} `json:"tournaments"`
	} `json:"statSeasons"`
	FirstSeasonStats optional[struct {
		Shotmap []struct {
			EventType string `json:"eventType"`
			Situation string `json:"situation"`
		} `json:"shotmap"`
	}] `json:"firstSeasonStats"`
}

type recentMatchRow struct {
	ID               flexString `json:"id"`
	TeamID           flexInt    `json:"teamId"`
	TeamName         string     `json:"teamName"`
	OpponentTeamID   flexInt    `json:"opponentTeamId"`
	OpponentTeamName string     `json:"opponentTeamName"`
	IsHomeTeam       bool       `json:"isHomeTeam"`
	MatchDate        struct {
		UTCTime string `json:"utcTime"`
	} `json:"matchDate"`
	LeagueID      flexInt          `json:"leagueId"`
	LeagueName    string           `json:"leagueName"`
	Stage         optional[string] `json:"stage"`
	HomeScore     flexInt          `json:"homeScore"`
	AwayScore     flexInt          `json:"awayScore"`
	MinutesPlayed flexInt          `json:"minutesPlayed"`
	Goals         flexInt          `json:"goals"`
	Assists       flexInt          `json:"assists"`
	YellowCards   flexInt          `json:"yellowCards"`
	RedCards      flexInt          `json:"redCards"`
	RatingProps   struct {
		Rating      rating `json:"rating"`
		IsTopRating bool   `json:"isTopRating"`
	} `json:"ratingProps"`
	PlayerOfTheMatch bool `json:"playerOfTheMatch"`
	OnBench          bool `json:"onBench"`
}
