package domain

import "fmt"

// Emotion is one of the six fixed sentiment categories.
type Emotion string

const (
	EmotionJoy      Emotion = "joy"
	EmotionSadness  Emotion = "sadness"
	EmotionAnger    Emotion = "anger"
	EmotionSurprise Emotion = "surprise"
	EmotionDisgust  Emotion = "disgust"
	EmotionFear     Emotion = "fear"
)

// AllEmotions is the closed, canonical enumeration order. Consumers that iterate
// over all categories must use this slice; map iteration order is not stable.
var AllEmotions = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionSurprise,
	EmotionDisgust,
	EmotionFear,
}

// ParseEmotion converts an external string into an Emotion.
func ParseEmotion(s string) (Emotion, error) {
	for _, e := range AllEmotions {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown emotion %q", s)
}

// Scores maps each emotion category to a non-negative weight.
// After normalization the six values sum to 1 (within floating-point tolerance).
type Scores map[Emotion]float64

// Sum returns the total weight across all categories.
// Accumulation follows AllEmotions order: float addition is not associative,
// so summing in map iteration order would make the result vary between calls.
func (s Scores) Sum() float64 {
	var total float64
	for _, e := range AllEmotions {
		total += s[e]
	}
	return total
}

// Dominant returns the category with the strictly greatest score.
// Ties resolve to whichever category appears first in AllEmotions.
func (s Scores) Dominant() Emotion {
	dominant := AllEmotions[0]
	best := s[dominant]
	for _, e := range AllEmotions[1:] {
		if s[e] > best {
			dominant = e
			best = s[e]
		}
	}
	return dominant
}

// Clone returns an independent copy of the score mapping.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
