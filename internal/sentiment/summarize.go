package sentiment

import "github.com/jongwoo01/comment-analyze/internal/domain"

// MaxTopComments caps the number of comment insights carried in a summary.
const MaxTopComments = 30

// Summarize completes every comment and aggregates the per-comment
// distributions into a video-level summary by arithmetic mean.
//
// Input order is preserved: ordering by relevance or like count is the
// fetch layer's responsibility. TopComments is truncated to MaxTopComments
// while TotalComments reports the full pre-truncation count. An empty input
// yields TotalComments 0 and a uniform summary distribution.
func Summarize(videoTitle, channelTitle string, comments []domain.Comment) domain.AnalysisSummary {
	insights := make([]domain.CommentInsight, 0, len(comments))
	for _, c := range comments {
		insights = append(insights, Complete(c))
	}

	totals := make(domain.Scores, len(domain.AllEmotions))
	for _, insight := range insights {
		for _, e := range domain.AllEmotions {
			totals[e] += insight.Scores[e]
		}
	}

	denominator := float64(len(insights))
	if denominator == 0 {
		denominator = 1
	}
	means := make(domain.Scores, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		means[e] = totals[e] / denominator
	}

	top := insights
	if len(top) > MaxTopComments {
		top = top[:MaxTopComments]
	}

	return domain.AnalysisSummary{
		Title:         videoTitle,
		ChannelTitle:  channelTitle,
		Scores:        normalize(means),
		TotalComments: len(insights),
		TopComments:   top,
	}
}
