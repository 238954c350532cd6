package domain

// Comment is a single YouTube comment as delivered by the fetch layer.
// Scores is nil when no classifier output is attached; it may also be
// partial, in which case the sentiment engine completes it.
type Comment struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Text        string `json:"text"`
	LikeCount   int64  `json:"like_count"`
	PublishedAt string `json:"published_at"`
	Scores      Scores `json:"scores,omitempty"`
}

// CommentInsight is a Comment whose Scores are guaranteed present and normalized.
type CommentInsight struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Text        string `json:"text"`
	LikeCount   int64  `json:"like_count"`
	PublishedAt string `json:"published_at"`
	Scores      Scores `json:"scores"`
}
