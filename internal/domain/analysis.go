package domain

import (
	"context"
	"time"
)

// Video is the metadata subset of a YouTube video the dashboard needs.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
}

// AnalysisSummary is the video-level result of analyzing a batch of comments.
// Scores is the normalized mean distribution across all analyzed comments.
// TopComments is capped; TotalComments reports the pre-truncation count.
type AnalysisSummary struct {
	VideoID       string           `json:"video_id"`
	Title         string           `json:"title"`
	ChannelTitle  string           `json:"channel_title"`
	Scores        Scores           `json:"scores"`
	TotalComments int              `json:"total_comments"`
	TopComments   []CommentInsight `json:"top_comments"`
	FetchedAt     time.Time        `json:"fetched_at"`
}

// VideoSource fetches video metadata and comments from an external API.
// Implementations are expected to return comments in display order
// (most relevant first); the analysis layer preserves that order.
type VideoSource interface {
	FetchVideo(ctx context.Context, videoID string) (Video, error)
	FetchComments(ctx context.Context, videoID string, maxResults int64) ([]Comment, error)
}
