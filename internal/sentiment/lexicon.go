package sentiment

import "github.com/jongwoo01/comment-analyze/internal/domain"

// lexicon holds the fixed marker substrings per emotion category.
// Entries are matched case-insensitively as substrings; the Korean entries are
// stems so that conjugated forms still match. The values are hand-tuned product
// choices carried over unchanged from the original tuning.
var lexicon = map[domain.Emotion][]string{
	domain.EmotionJoy:      {"ㅋㅋ", "좋아", "행복", "최고", "웃겨", "haha"},
	domain.EmotionSadness:  {"ㅠㅠ", "슬프", "눈물", "우울", "아쉽", "sad"},
	domain.EmotionAnger:    {"화나", "짜증", "열받", "빡치", "어이없", "angry"},
	domain.EmotionSurprise: {"헐", "대박", "놀라", "깜짝", "충격", "wow"},
	domain.EmotionDisgust:  {"역겹", "징그", "혐오", "더럽", "토나", "gross"},
	domain.EmotionFear:     {"무서", "두렵", "공포", "소름", "불안", "scary"},
}
