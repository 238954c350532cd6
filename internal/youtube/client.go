package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jongwoo01/comment-analyze/internal/domain"
	"github.com/jongwoo01/comment-analyze/internal/metrics"
	"github.com/jongwoo01/comment-analyze/internal/retry"
	"github.com/sony/gobreaker"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

var defaultPolicy = retry.Policy{
	MaxAttempts:      3,
	InitialBackoff:   500 * time.Millisecond,
	RateLimitBackoff: 5 * time.Second,
	OnRetry: func(attempt int, err error, backoff time.Duration) {
		slog.Warn("Retrying YouTube API call", "attempt", attempt, "backoff", backoff, "error", err)
	},
}

// Client implements domain.VideoSource against the YouTube Data API v3.
type Client struct {
	service *ytapi.Service
	breaker *gobreaker.CircuitBreaker
	policy  retry.Policy
}

var _ domain.VideoSource = (*Client)(nil)

// NewClient creates a YouTube Data API client authenticated by API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	service, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{
		service: service,
		breaker: newBreaker("youtube"),
		policy:  defaultPolicy,
	}, nil
}

// FetchVideo retrieves the snippet metadata of a single video.
func (c *Client) FetchVideo(ctx context.Context, videoID string) (domain.Video, error) {
	resp, err := retry.Do(ctx, c.policy, classifyError, func() (*ytapi.VideoListResponse, error) {
		return execute(c, "videos.list", func() (*ytapi.VideoListResponse, error) {
			return c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
		})
	})
	if err != nil {
		return domain.Video{}, translateError(err)
	}
	if len(resp.Items) == 0 {
		return domain.Video{}, domain.ErrVideoNotFound
	}

	item := resp.Items[0]
	return domain.Video{
		ID:           item.Id,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}

// FetchComments retrieves up to maxResults top-level comments, ordered by
// relevance. The returned order is preserved downstream.
func (c *Client) FetchComments(ctx context.Context, videoID string, maxResults int64) ([]domain.Comment, error) {
	resp, err := retry.Do(ctx, c.policy, classifyError, func() (*ytapi.CommentThreadListResponse, error) {
		return execute(c, "commentThreads.list", func() (*ytapi.CommentThreadListResponse, error) {
			return c.service.CommentThreads.List([]string{"snippet"}).
				VideoId(videoID).
				Order("relevance").
				MaxResults(maxResults).
				TextFormat("plainText").
				Context(ctx).
				Do()
		})
	})
	if err != nil {
		return nil, translateError(err)
	}

	return mapCommentThreads(resp.Items), nil
}

// execute runs a single API call through the circuit breaker and records metrics.
func execute[T any](c *Client, operation string, call func() (T, error)) (T, error) {
	start := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		return call()
	})
	metrics.YouTubeAPIRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.YouTubeAPIRequestsTotal.WithLabelValues(operation, "error").Inc()
		var zero T
		return zero, err
	}
	metrics.YouTubeAPIRequestsTotal.WithLabelValues(operation, "success").Inc()
	return result.(T), nil
}

func mapCommentThreads(items []*ytapi.CommentThread) []domain.Comment {
	comments := make([]domain.Comment, 0, len(items))
	for _, item := range items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil {
			continue
		}
		top := item.Snippet.TopLevelComment
		if top.Snippet == nil {
			continue
		}
		comments = append(comments, domain.Comment{
			ID:          top.Id,
			Author:      top.Snippet.AuthorDisplayName,
			Text:        top.Snippet.TextDisplay,
			LikeCount:   top.Snippet.LikeCount,
			PublishedAt: top.Snippet.PublishedAt,
		})
	}
	return comments
}

// classifyError decides how the retry policy treats an API failure.
func classifyError(err error) retry.Action {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return retry.Stop
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if hasReason(apiErr, "quotaExceeded", "rateLimitExceeded", "userRateLimitExceeded", "dailyLimitExceeded") {
			return retry.After
		}
		if apiErr.Code >= http.StatusInternalServerError {
			return retry.Retry
		}
		return retry.Stop
	}

	// Transport-level failures are worth retrying.
	return retry.Retry
}

// translateError maps API failures to domain sentinel errors where one applies.
func translateError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusNotFound,
			hasReason(apiErr, "videoNotFound"):
			return domain.ErrVideoNotFound
		case hasReason(apiErr, "commentsDisabled"):
			return domain.ErrCommentsDisabled
		case hasReason(apiErr, "quotaExceeded", "rateLimitExceeded", "userRateLimitExceeded", "dailyLimitExceeded"):
			return domain.ErrQuotaExceeded
		}
	}
	return err
}

func hasReason(apiErr *googleapi.Error, reasons ...string) bool {
	for _, item := range apiErr.Errors {
		for _, reason := range reasons {
			if item.Reason == reason {
				return true
			}
		}
	}
	return false
}
