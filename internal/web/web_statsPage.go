package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// statsPage handles "/stats" and shows service usage counters. Counters are
// aggregates only; no submitted grades ever reach the database.
func (s *Server) statsPage(c *gin.Context) {
	usage, err := s.DB.GetUsageStats()
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "Failed to load usage statistics", err.Error())
		return
	}

	data := StatsPageData{
		TemplateData: s.getBaseTemplateData("Usage Statistics"),
		Usage:        usage,
	}
	s.renderPage(c, http.StatusOK, "stats.html", data)
}
