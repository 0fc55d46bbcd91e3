package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/grades"
)

// analyzePage handles the form POST on "/analyze" and renders the result
// page server-side. This is the no-script fallback; the index page itself
// submits to the JSON API and draws the chart client-side.
func (s *Server) analyzePage(c *gin.Context) {
	raw := c.PostForm("grades")

	result, err := s.runAnalysis(raw)
	if err != nil {
		if errors.Is(err, grades.ErrInvalidInput) {
			s.renderError(c, http.StatusBadRequest, "Please enter valid numeric grades separated by commas", err.Error())
			return
		}
		s.renderError(c, http.StatusInternalServerError, "Analysis failed", err.Error())
		return
	}

	data := AnalysisPageData{
		TemplateData: s.getBaseTemplateData("Grade Distribution Analysis"),
		Input:        raw,
		Result:       result,
		BarRows:      barRows(result.Histogram),
	}
	s.renderPage(c, http.StatusOK, "result.html", data)
}
