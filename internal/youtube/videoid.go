package youtube

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jongwoo01/comment-analyze/internal/domain"
)

// videoIDPattern matches the 11-character YouTube video ID alphabet.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// pathPrefixes are URL path shapes that carry the video ID as the next segment.
var pathPrefixes = []string{"/shorts/", "/embed/", "/live/"}

// ExtractVideoID extracts the 11-character video ID from a YouTube URL.
// Accepted shapes: watch?v=, youtu.be/, /shorts/, /embed/, /live/, and a
// bare video ID. Anything else fails with domain.ErrInvalidVideoURL.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.ErrInvalidVideoURL
	}

	if videoIDPattern.MatchString(raw) {
		return raw, nil
	}

	// Pasted URLs often lack a scheme; net/url needs one to split out the host.
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", domain.ErrInvalidVideoURL
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch host {
	case "youtu.be":
		id := strings.Trim(u.Path, "/")
		if idx := strings.Index(id, "/"); idx >= 0 {
			id = id[:idx]
		}
		return validateID(id)
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			return validateID(u.Query().Get("v"))
		}
		for _, prefix := range pathPrefixes {
			if strings.HasPrefix(u.Path, prefix) {
				id := strings.Trim(strings.TrimPrefix(u.Path, prefix), "/")
				return validateID(id)
			}
		}
	}

	return "", domain.ErrInvalidVideoURL
}

func validateID(id string) (string, error) {
	if !videoIDPattern.MatchString(id) {
		return "", domain.ErrInvalidVideoURL
	}
	return id, nil
}
