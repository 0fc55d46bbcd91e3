package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/grades"
)

// apiAnalyze handles "/api/v1/analyze" and returns the full analysis as
// JSON. Accepts the grade list as a form field (POST) or query parameter
// (GET), both named "grades".
func (s *Server) apiAnalyze(c *gin.Context) {
	raw := c.PostForm("grades")
	if raw == "" {
		raw = c.Query("grades")
	}

	result, err := s.runAnalysis(raw)
	if err != nil {
		if errors.Is(err, grades.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter valid numeric grades separated by commas"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// getStats handles "/api/v1/stats" and returns the service usage counters.
func (s *Server) getStats(c *gin.Context) {
	usage, err := s.DB.GetUsageStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usage)
}
