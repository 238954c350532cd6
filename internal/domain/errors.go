package domain

import "errors"

var (
	ErrInvalidVideoURL  = errors.New("invalid video URL")
	ErrVideoNotFound    = errors.New("video not found")
	ErrCommentsDisabled = errors.New("comments are disabled for this video")
	ErrQuotaExceeded    = errors.New("API quota exceeded")
)
