package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/jongwoo01/comment-analyze/internal/domain"
	"github.com/jongwoo01/comment-analyze/internal/metrics"
	"github.com/jongwoo01/comment-analyze/internal/sentiment"
	"github.com/jongwoo01/comment-analyze/internal/youtube"
	"golang.org/x/sync/singleflight"
)

// Service is the application layer. It orchestrates the analyze use case.
type Service struct {
	source        domain.VideoSource
	clock         clockwork.Clock
	maxComments   int64
	analysisGroup singleflight.Group
}

// NewService creates the application layer service. maxComments bounds the
// number of comments fetched per analysis.
func NewService(source domain.VideoSource, clock clockwork.Clock, maxComments int) *Service {
	return &Service{
		source:      source,
		clock:       clock,
		maxComments: int64(maxComments),
	}
}

// Analyze resolves a raw video URL, fetches metadata and top comments, and
// aggregates the per-comment emotion distributions into a summary.
// Concurrent analyses of the same video collapse into a single fetch.
func (s *Service) Analyze(ctx context.Context, rawURL string) (*domain.AnalysisSummary, error) {
	videoID, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues("invalid_url").Inc()
		return nil, err
	}

	result, err, _ := s.analysisGroup.Do(videoID, func() (any, error) {
		return s.analyze(ctx, videoID)
	})
	if err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}

	summary := result.(*domain.AnalysisSummary)
	metrics.AnalysisRequestsTotal.WithLabelValues("success").Inc()
	metrics.DominantEmotionTotal.WithLabelValues(string(summary.Scores.Dominant())).Inc()
	return summary, nil
}

func (s *Service) analyze(ctx context.Context, videoID string) (*domain.AnalysisSummary, error) {
	analysisID := uuid.NewString()
	logger := slog.With("analysis_id", analysisID, "video_id", videoID)
	start := s.clock.Now()

	video, err := s.source.FetchVideo(ctx, videoID)
	if err != nil {
		logger.Warn("Video fetch failed", "error", err)
		return nil, err
	}

	comments, err := s.source.FetchComments(ctx, videoID, s.maxComments)
	if err != nil {
		logger.Warn("Comment fetch failed", "error", err)
		return nil, err
	}

	summary := sentiment.Summarize(video.Title, video.ChannelTitle, comments)
	summary.VideoID = video.ID
	summary.FetchedAt = s.clock.Now().UTC()

	elapsed := s.clock.Since(start)
	metrics.AnalysisDuration.Observe(elapsed.Seconds())
	metrics.CommentsAnalyzedTotal.Add(float64(summary.TotalComments))

	logger.Info("Analysis complete",
		"channel", video.ChannelTitle,
		"comments", summary.TotalComments,
		"dominant", summary.Scores.Dominant(),
		"duration", elapsed.Round(time.Millisecond),
	)

	return &summary, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidVideoURL):
		return "invalid_url"
	case errors.Is(err, domain.ErrVideoNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCommentsDisabled):
		return "comments_disabled"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return "quota"
	default:
		return "error"
	}
}
