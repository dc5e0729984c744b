package usecase_test

import (
	"context"
	"errors"
	"testing"

	usecasemock "github.com/riskibarqy/football-stats/internal/mocks/usecase"
	"github.com/riskibarqy/football-stats/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestTeamStatsService_Report_InvalidIDUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)

	_, err := usecase.NewTeamStatsService(provider).Report(context.Background(), 0)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got=%v", err)
	}
	provider.AssertNotCalled(t, "FetchTeam", mock.Anything, mock.Anything)
}

func TestTeamStatsService_Report_UpstreamFailureUsingMockery(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.
		On("FetchTeam", mock.Anything, int64(8650)).
		Return(usecase.ExternalTeam{}, &usecase.UpstreamError{StatusCode: 502, URL: "/teams?id=8650"}).
		Once()

	_, err := usecase.NewTeamStatsService(provider).Report(context.Background(), 8650)
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected upstream error, got=%v", err)
	}
	provider.AssertNotCalled(t, "FetchTeamLeaderboard", mock.Anything, mock.Anything)
}
