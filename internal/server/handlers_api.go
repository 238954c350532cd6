package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jongwoo01/comment-analyze/internal/domain"
	apperrors "github.com/jongwoo01/comment-analyze/internal/errors"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerAPIRoutes(rateLimiter echo.MiddlewareFunc) {
	s.echo.GET("/api/analyze", s.handleAnalyze, rateLimiter)
}

func (s *Server) registerMetricsRoute() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// analyzeResponse is the JSON shape of a completed analysis. The dominant
// emotion is derived here for the client; the domain summary does not store it.
type analyzeResponse struct {
	domain.AnalysisSummary
	DominantEmotion domain.Emotion `json:"dominant_emotion"`
}

func (s *Server) handleAnalyze(c echo.Context) error {
	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return apperrors.ValidationError("url query parameter is required")
	}

	summary, err := s.app.Analyze(c.Request().Context(), rawURL)
	if err != nil {
		return mapAnalyzeError(err, rawURL)
	}

	resp := analyzeResponse{
		AnalysisSummary: *summary,
		DominantEmotion: summary.Scores.Dominant(),
	}
	if err := c.JSON(http.StatusOK, resp); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func mapAnalyzeError(err error, rawURL string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidVideoURL):
		return apperrors.ValidationError("not a recognizable YouTube video URL").WithField("url", rawURL)
	case errors.Is(err, domain.ErrVideoNotFound):
		return apperrors.NotFoundError("video not found").WithField("url", rawURL)
	case errors.Is(err, domain.ErrCommentsDisabled):
		return apperrors.ConflictError("comments are disabled for this video").WithField("url", rawURL)
	case errors.Is(err, domain.ErrQuotaExceeded):
		return apperrors.ExternalError("YouTube API quota exceeded, try again later", err)
	default:
		return apperrors.InternalError("analysis failed", err).WithField("url", rawURL)
	}
}
