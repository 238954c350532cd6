package server

import (
	"context"
	"errors"
	"testing"

	"github.com/jongwoo01/comment-analyze/internal/config"
	"github.com/jongwoo01/comment-analyze/internal/domain"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockAppService struct {
	analyzeFn func(ctx context.Context, rawURL string) (*domain.AnalysisSummary, error)
}

func (m *mockAppService) Analyze(ctx context.Context, rawURL string) (*domain.AnalysisSummary, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, rawURL)
	}
	return nil, errors.New("not implemented")
}

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:               "test",
		Port:                 "8080",
		YouTubeAPIKey:        "test-key",
		MaxComments:          100,
		AnalyzeRatePerSecond: 1000,
		AnalyzeBurst:         1000,
	}
}

func newTestServer(t *testing.T, app appService, healthChecks ...HealthCheck) *Server {
	t.Helper()
	srv, err := NewServer(testConfig(), app, healthChecks)
	require.NoError(t, err)
	return srv
}

func uniformScores() domain.Scores {
	s := make(domain.Scores, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		s[e] = 1.0 / 6.0
	}
	return s
}
