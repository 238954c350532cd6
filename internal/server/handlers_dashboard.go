package server

import (
	"github.com/jongwoo01/comment-analyze/internal/domain"
	"github.com/labstack/echo/v4"
)

type dashboardData struct {
	Emotions []domain.Emotion
}

func (s *Server) handleDashboard(c echo.Context) error {
	return s.renderTemplate(c, "dashboard.html", dashboardData{
		Emotions: domain.AllEmotions,
	})
}
