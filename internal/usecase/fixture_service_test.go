package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats/internal/domain/fixture"
	"github.com/riskibarqy/football-stats/internal/platform/logging"
)

func match(id string, kickoff time.Time, started, finished, cancelled bool) ExternalMatch {
	return ExternalMatch{
		ID:        id,
		Round:     "1",
		Home:      ExternalMatchSide{ID: 1, Name: "Home", ShortName: "HOM"},
		Away:      ExternalMatchSide{ID: 2, Name: "Away", ShortName: "AWY"},
		UTCTime:   kickoff.Format(time.RFC3339),
		KickoffAt: kickoff,
		Started:   started,
		Finished:  finished,
		Cancelled: cancelled,
	}
}

func TestFixtureService_Upcoming(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	provider := newStubProvider()
	provider.leagues[47] = ExternalLeague{
		ID: 47,
		Matches: []ExternalMatch{
			match("m-late", base.Add(48*time.Hour), false, false, false),
			match("m-done", base.Add(-24*time.Hour), true, true, false),
			match("m-live", base, true, false, false),
			match("m-off", base.Add(time.Hour), false, false, true),
			match("m-next", base.Add(24*time.Hour), false, false, false),
		},
	}
	svc := NewFixtureService(provider, 0, logging.NewNop())

	got, err := svc.Upcoming(context.Background(), 47, 0)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	want := []string{"m-live", "m-next", "m-late"}
	if len(got) != len(want) {
		t.Fatalf("expected %d fixtures, got=%d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("fixture %d: got=%s want=%s", i, got[i].ID, id)
		}
	}
	if got[0].Status != fixture.StatusLive || got[1].Status != fixture.StatusUpcoming {
		t.Fatalf("unexpected statuses: %s %s", got[0].Status, got[1].Status)
	}
	if got[0].HomeTeam.ShortName != "HOM" {
		t.Fatalf("unexpected home team: %+v", got[0].HomeTeam)
	}

	limited, err := svc.Upcoming(context.Background(), 47, 2)
	if err != nil {
		t.Fatalf("upcoming limited: %v", err)
	}
	if len(limited) != 2 || limited[1].ID != "m-next" {
		t.Fatalf("unexpected limited fixtures: %+v", limited)
	}
}

func TestFixtureService_UpcomingSortsUntimedMatchesLast(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	untimed := match("m-untimed", time.Time{}, false, false, false)
	untimed.UTCTime = ""
	garbled := match("m-garbled", time.Time{}, false, false, false)
	garbled.UTCTime = "not-a-time"

	provider := newStubProvider()
	provider.leagues[47] = ExternalLeague{
		ID: 47,
		Matches: []ExternalMatch{
			untimed,
			match("m-second", base.Add(24*time.Hour), false, false, false),
			garbled,
			match("m-first", base, false, false, false),
		},
	}
	svc := NewFixtureService(provider, 0, logging.NewNop())

	got, err := svc.Upcoming(context.Background(), 47, 0)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	want := []string{"m-first", "m-second", "m-untimed", "m-garbled"}
	if len(got) != len(want) {
		t.Fatalf("expected %d fixtures, got=%d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got=%s", i, id, got[i].ID)
		}
	}

	limited, err := svc.Upcoming(context.Background(), 47, 2)
	if err != nil {
		t.Fatalf("upcoming limited: %v", err)
	}
	if len(limited) != 2 || limited[0].ID != "m-first" || limited[1].ID != "m-second" {
		t.Fatalf("limit must keep timed fixtures first, got=%+v", limited)
	}
}

func TestFixtureService_UpcomingInvalidLeague(t *testing.T) {
	t.Parallel()

	svc := NewFixtureService(newStubProvider(), 0, logging.NewNop())
	if _, err := svc.Upcoming(context.Background(), -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got=%v", err)
	}
}

func TestFixtureService_TodayMatches(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	provider := newStubProvider()
	provider.leagues[47] = ExternalLeague{
		ID: 47,
		Matches: []ExternalMatch{
			match("pl-evening", now.Add(10*time.Hour), false, false, false),
			match("pl-morning", now.Add(-8*time.Hour), true, true, false),
			match("pl-yesterday", now.Add(-24*time.Hour), true, true, false),
			match("pl-cancelled", now.Add(time.Hour), false, false, true),
			{ID: "pl-undated"},
		},
	}
	provider.leagues[42] = ExternalLeague{
		ID:      42,
		Matches: []ExternalMatch{match("ucl-night", now.Add(11*time.Hour), false, false, false)},
	}
	provider.leagues[87] = ExternalLeague{
		ID:      87,
		Matches: []ExternalMatch{match("liga-tomorrow", now.Add(24*time.Hour), false, false, false)},
	}

	groups := NewFixtureService(provider, 0, logging.NewNop()).TodayMatches(context.Background(), now)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got=%d", len(groups))
	}
	if groups[0].LeagueID != 47 || groups[1].LeagueID != 42 {
		t.Fatalf("groups must follow catalog order: %d %d", groups[0].LeagueID, groups[1].LeagueID)
	}
	if groups[0].LeagueName != "Premier League" || groups[0].LeagueCountry != "England" {
		t.Fatalf("unexpected league group: %+v", groups[0])
	}

	pl := groups[0].Matches
	if len(pl) != 2 || pl[0].MatchID != "pl-morning" || pl[1].MatchID != "pl-evening" {
		t.Fatalf("unexpected premier league matches: %+v", pl)
	}
	if pl[0].Status != fixture.StatusFinished || pl[0].LeagueID != 47 {
		t.Fatalf("unexpected first match: %+v", pl[0])
	}
}

func TestFixtureService_TodayMatchesAllFailing(t *testing.T) {
	t.Parallel()

	groups := NewFixtureService(newStubProvider(), 0, logging.NewNop()).TodayMatches(context.Background(), time.Now())
	if groups == nil || len(groups) != 0 {
		t.Fatalf("expected empty non-nil groups, got=%v", groups)
	}
}
