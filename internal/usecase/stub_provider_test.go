package usecase

import (
	"context"
	"fmt"
	"sync"
)

type stubProvider struct {
	mu sync.Mutex

	leagues          map[int64]ExternalLeague
	leaderboards     map[string][]ExternalStatEntry
	leaderboardErrs  map[string]error
	teams            map[int64]ExternalTeam
	teamLeaderboards map[string][]ExternalTeamStatEntry
	players          map[string]ExternalPlayer
	playerErrs       map[string]error

	calls       map[string]int
	playerCalls []string
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		leagues:          map[int64]ExternalLeague{},
		leaderboards:     map[string][]ExternalStatEntry{},
		leaderboardErrs:  map[string]error{},
		teams:            map[int64]ExternalTeam{},
		teamLeaderboards: map[string][]ExternalTeamStatEntry{},
		players:          map[string]ExternalPlayer{},
		playerErrs:       map[string]error{},
		calls:            map[string]int{},
	}
}

func leaderboardKey(leagueID, seasonID int64, stat StatCategory) string {
	return fmt.Sprintf("%d/%d/%s", leagueID, seasonID, stat)
}

func playerKey(playerID int64, entryID string) string {
	return fmt.Sprintf("%d/%s", playerID, entryID)
}

func (s *stubProvider) record(method string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[method]++
}

func (s *stubProvider) callCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

func (s *stubProvider) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *stubProvider) FetchLeague(_ context.Context, leagueID int64) (ExternalLeague, error) {
	s.record("FetchLeague")
	league, ok := s.leagues[leagueID]
	if !ok {
		return ExternalLeague{}, &UpstreamError{StatusCode: 404, URL: fmt.Sprintf("/leagues?id=%d", leagueID)}
	}
	return league, nil
}

func (s *stubProvider) FetchSeasonLeaderboard(_ context.Context, leagueID, seasonID int64, stat StatCategory) ([]ExternalStatEntry, error) {
	s.record("FetchSeasonLeaderboard")
	key := leaderboardKey(leagueID, seasonID, stat)
	if err := s.leaderboardErrs[key]; err != nil {
		return nil, err
	}
	return s.leaderboards[key], nil
}

func (s *stubProvider) FetchTeam(_ context.Context, teamID int64) (ExternalTeam, error) {
	s.record("FetchTeam")
	team, ok := s.teams[teamID]
	if !ok {
		return ExternalTeam{}, &UpstreamError{StatusCode: 404, URL: fmt.Sprintf("/teams?id=%d", teamID)}
	}
	return team, nil
}

func (s *stubProvider) FetchTeamLeaderboard(_ context.Context, url string) ([]ExternalTeamStatEntry, error) {
	s.record("FetchTeamLeaderboard")
	rows, ok := s.teamLeaderboards[url]
	if !ok {
		return nil, &UpstreamError{StatusCode: 404, URL: url}
	}
	return rows, nil
}

func (s *stubProvider) FetchPlayer(_ context.Context, playerID int64, entryID string) (ExternalPlayer, error) {
	s.record("FetchPlayer")
	key := playerKey(playerID, entryID)

	s.mu.Lock()
	s.playerCalls = append(s.playerCalls, key)
	s.mu.Unlock()

	if err := s.playerErrs[key]; err != nil {
		return ExternalPlayer{}, err
	}
	player, ok := s.players[key]
	if !ok {
		return ExternalPlayer{}, &UpstreamError{StatusCode: 404, URL: "/playerData?id=" + key}
	}
	return player, nil
}

func (s *stubProvider) fetchedPlayer(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.playerCalls {
		if k == key {
			return true
		}
	}
	return false
}

func statEntries(startID int64, count int, teamID int64) []ExternalStatEntry {
	out := make([]ExternalStatEntry, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, ExternalStatEntry{
			PlayerID: startID + int64(i),
			TeamID:   teamID,
			Name:     fmt.Sprintf("Player %d", startID+int64(i)),
			Value:    count - i,
		})
	}
	return out
}
