package sentiment

import (
	"fmt"
	"testing"

	"github.com/jongwoo01/comment-analyze/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_EmptyInput(t *testing.T) {
	summary := Summarize("Some Video", "Some Channel", nil)

	assert.Equal(t, "Some Video", summary.Title)
	assert.Equal(t, "Some Channel", summary.ChannelTitle)
	assert.Equal(t, 0, summary.TotalComments)
	assert.Empty(t, summary.TopComments)
	for _, e := range domain.AllEmotions {
		assert.InDelta(t, 1.0/6.0, summary.Scores[e], 1e-9)
	}
}

func TestSummarize_PreScoredComments_MeanReproduced(t *testing.T) {
	// already-normalized inputs: score completion must be a no-op
	comments := []domain.Comment{
		{ID: "a", Scores: domain.Scores{
			domain.EmotionJoy: 0.5, domain.EmotionSadness: 0.5,
			domain.EmotionAnger: 0, domain.EmotionSurprise: 0,
			domain.EmotionDisgust: 0, domain.EmotionFear: 0,
		}},
		{ID: "b", Scores: domain.Scores{
			domain.EmotionJoy: 0.1, domain.EmotionSadness: 0.3,
			domain.EmotionAnger: 0.6, domain.EmotionSurprise: 0,
			domain.EmotionDisgust: 0, domain.EmotionFear: 0,
		}},
	}

	summary := Summarize("v", "c", comments)

	assert.Equal(t, 2, summary.TotalComments)
	assert.InDelta(t, 0.3, summary.Scores[domain.EmotionJoy], 1e-9)
	assert.InDelta(t, 0.4, summary.Scores[domain.EmotionSadness], 1e-9)
	assert.InDelta(t, 0.3, summary.Scores[domain.EmotionAnger], 1e-9)
	assert.InDelta(t, 0.0, summary.Scores[domain.EmotionFear], 1e-9)
}

func TestSummarize_TruncatesTopCommentsPreservingOrder(t *testing.T) {
	comments := make([]domain.Comment, 45)
	for i := range comments {
		comments[i] = domain.Comment{ID: fmt.Sprintf("c%02d", i), Text: "ㅋㅋ"}
	}

	summary := Summarize("v", "c", comments)

	assert.Equal(t, 45, summary.TotalComments)
	require.Len(t, summary.TopComments, MaxTopComments)
	for i, insight := range summary.TopComments {
		assert.Equal(t, fmt.Sprintf("c%02d", i), insight.ID)
	}
}

func TestSummarize_MixedRawAndPreScored(t *testing.T) {
	comments := []domain.Comment{
		{ID: "raw", Text: "행복 최고"},
		{ID: "scored", Scores: domain.Scores{domain.EmotionFear: 1}},
	}

	summary := Summarize("v", "c", comments)

	assert.Equal(t, 2, summary.TotalComments)
	require.Len(t, summary.TopComments, 2)
	assert.Equal(t, "raw", summary.TopComments[0].ID)
	assert.Equal(t, "scored", summary.TopComments[1].ID)
	assert.InDelta(t, 1.0, summary.Scores.Sum(), 1e-9)
	assert.Greater(t, summary.Scores[domain.EmotionFear], summary.Scores[domain.EmotionAnger])
}

func TestSummarize_SummaryDistributionIsNormalized(t *testing.T) {
	comments := []domain.Comment{
		{ID: "a", Text: "화나네 진짜"},
		{ID: "b", Text: "소름 돋았다"},
		{ID: "c", Text: ""},
	}
	summary := Summarize("v", "c", comments)
	assert.InDelta(t, 1.0, summary.Scores.Sum(), 1e-9)
	assert.Equal(t, 3, summary.TotalComments)
}
