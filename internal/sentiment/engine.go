package sentiment

import (
	"math"
	"regexp"
	"strings"

	"github.com/jongwoo01/comment-analyze/internal/domain"
)

// Tuning constants. The values are hand-tuned; changing them changes every
// produced distribution, so they are kept identical to the original tuning.
const (
	// Baseline is the per-category floor, added before any matching so that
	// an empty or unmatched comment still normalizes to a valid distribution.
	Baseline = 0.02
	// EntryIncrement is added per distinct matching lexicon entry.
	// Multiple entries within the same category accumulate additively.
	EntryIncrement = 0.18
	// PunctuationBonus is added to surprise for runs of !! or ??.
	PunctuationBonus = 0.12
	// LaughterBonus is added to joy for repeated laughter glyphs.
	LaughterBonus = 0.10
	// ShockBonus is added to surprise for repeated shock glyphs.
	ShockBonus = 0.08
	// CryingBonus is added to sadness for repeated crying glyphs.
	CryingBonus = 0.10
)

// normTolerance is the tolerance within which a distribution counts as
// already normalized and is returned unchanged.
const normTolerance = 1e-9

var (
	punctuationRun = regexp.MustCompile(`[!?]{2,}`)
	laughterRun    = regexp.MustCompile(`ㅋ{2,}`)
	shockRun       = regexp.MustCompile(`ㄷㄷ`)
	cryingRun      = regexp.MustCompile(`[ㅠㅜ]{2,}`)
)

// Score maps a comment's raw text to a normalized distribution over the six
// emotion categories. It is a pure function: any string in, a distribution
// summing to 1 out. Empty or signal-free text yields the uniform distribution.
func Score(text string) domain.Scores {
	lower := strings.ToLower(text)

	weights := make(domain.Scores, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		weights[e] = Baseline
	}

	for _, e := range domain.AllEmotions {
		for _, marker := range lexicon[e] {
			if strings.Contains(lower, marker) {
				weights[e] += EntryIncrement
			}
		}
	}

	// Secondary heuristics, checked independently; all may fire on one text.
	if punctuationRun.MatchString(lower) {
		weights[domain.EmotionSurprise] += PunctuationBonus
	}
	if laughterRun.MatchString(lower) {
		weights[domain.EmotionJoy] += LaughterBonus
	}
	if shockRun.MatchString(lower) {
		weights[domain.EmotionSurprise] += ShockBonus
	}
	if cryingRun.MatchString(lower) {
		weights[domain.EmotionSadness] += CryingBonus
	}

	return normalize(weights)
}

// normalize scales a weight mapping so its six values sum to 1.
// A zero sum falls back to the uniform distribution. A mapping that already
// sums to 1 within tolerance is returned as-is, so re-normalizing an
// already-normalized distribution is exact, not merely approximate.
func normalize(weights domain.Scores) domain.Scores {
	sum := weights.Sum()
	if sum == 0 {
		uniform := make(domain.Scores, len(domain.AllEmotions))
		for _, e := range domain.AllEmotions {
			uniform[e] = 1.0 / float64(len(domain.AllEmotions))
		}
		return uniform
	}
	if math.Abs(sum-1) <= normTolerance {
		return weights
	}

	out := make(domain.Scores, len(domain.AllEmotions))
	for _, e := range domain.AllEmotions {
		out[e] = weights[e] / sum
	}
	return out
}

// Complete turns a Comment into a CommentInsight with a full, normalized
// score distribution. Pre-attached scores are authoritative per category;
// missing, non-finite, or negative values degrade to 0 before renormalizing.
// A comment without any attached scores is scored from its text.
func Complete(c domain.Comment) domain.CommentInsight {
	var scores domain.Scores
	if c.Scores == nil {
		scores = Score(c.Text)
	} else {
		scores = make(domain.Scores, len(domain.AllEmotions))
		for _, e := range domain.AllEmotions {
			v, ok := c.Scores[e]
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				v = 0
			}
			scores[e] = v
		}
		scores = normalize(scores)
	}

	return domain.CommentInsight{
		ID:          c.ID,
		Author:      c.Author,
		Text:        c.Text,
		LikeCount:   c.LikeCount,
		PublishedAt: c.PublishedAt,
		Scores:      scores,
	}
}
