package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// homePage handles "/" and shows the grade input form.
func (s *Server) homePage(c *gin.Context) {
	data := AnalysisPageData{
		TemplateData: s.getBaseTemplateData("Grade Distribution Analyzer"),
	}
	s.renderPage(c, http.StatusOK, "index.html", data)
}
