package web

import (
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/config"
	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/grades"
	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/models"
)

// GetPort returns the listening port from the config.
func (s *Server) GetPort() int {
	return s.Config.ListenPort
}

// getBaseTemplateData creates a TemplateData struct with common information.
func (s *Server) getBaseTemplateData(title string) TemplateData {
	return TemplateData{
		Title:       title,
		CurrentTime: time.Now().Format("2006-01-02 15:04:05"),
		Port:        s.GetPort(),
		AppVersion:  config.AppVersion,
	}
}

// templatePath resolves a template file below the configured web directory.
func (s *Server) templatePath(name string) string {
	return filepath.Join(s.Config.WebDir, "templates", name)
}

// renderPage renders a content template wrapped in base.html.
// Templates are loaded per request to avoid engine-level name conflicts.
func (s *Server) renderPage(c *gin.Context, statusCode int, templateName string, data interface{}) {
	tmpl, err := template.ParseFiles(s.templatePath("base.html"), s.templatePath(templateName))
	if err != nil {
		log.Printf("[ERROR]: failed to parse template %s: %v", templateName, err)
		c.String(500, "Template error: %v", err)
		return
	}
	c.Header("Content-Type", "text/html")
	c.Status(statusCode)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		log.Printf("[ERROR]: failed to render template %s: %v", templateName, err)
	}
}

// renderError renders an error page.
func (s *Server) renderError(c *gin.Context, statusCode int, message string, errstring string) {
	errorData := struct {
		TemplateData
		Error      string
		StatusCode int
	}{
		TemplateData: s.getBaseTemplateData("Error"),
		Error:        message,
		StatusCode:   statusCode,
	}
	log.Printf("[ERROR]: %d: %s - %s", statusCode, message, errstring)

	tmpl, err := template.ParseFiles(s.templatePath("base.html"), s.templatePath("error.html"))
	if err != nil {
		c.String(statusCode, "Error: %s - %s", message, errstring)
		return
	}
	c.Header("Content-Type", "text/html")
	c.Status(statusCode)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", errorData); err != nil {
		log.Printf("Error rendering error template: %v", err)
		c.String(statusCode, "Error: %s - %s", message, errstring)
	}
}

// runAnalysis parses raw grade input and produces the full analysis payload.
// Usage counters are best-effort: a counter failure is logged, never surfaced.
func (s *Server) runAnalysis(raw string) (*models.AnalysisResult, error) {
	values, skipped, err := grades.ParseGradeList(raw)
	if err != nil {
		if dberr := s.DB.RecordInvalidRequest(); dberr != nil {
			log.Printf("[WARN]: failed to record invalid request: %v", dberr)
		}
		return nil, err
	}

	summary, err := grades.Summarize(values)
	if err != nil {
		// unreachable after a successful parse, but keep the error path honest
		return nil, err
	}
	hist := grades.BuildHistogram(values, s.Buckets)

	result := &models.AnalysisResult{
		Stats: models.StatisticsResult{
			Count:  summary.Count,
			Mean:   summary.Mean,
			Median: summary.Median,
			StdDev: summary.StdDev,
			Min:    summary.Min,
			Max:    summary.Max,
		},
		Histogram: make([]models.HistogramBucket, len(hist)),
		Grades:    values,
		Skipped:   skipped,
	}
	for i, b := range hist {
		result.Histogram[i] = models.HistogramBucket{Low: b.Low, High: b.High, Count: b.Count}
	}

	if dberr := s.DB.RecordAnalysis(summary.Count); dberr != nil {
		log.Printf("[WARN]: failed to record analysis: %v", dberr)
	}
	return result, nil
}

// barRows converts histogram buckets into rows for the HTML bar chart,
// scaling widths against the fullest bucket.
func barRows(hist []models.HistogramBucket) []BarRow {
	maxCount := 0
	for _, b := range hist {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	rows := make([]BarRow, len(hist))
	for i, b := range hist {
		percent := 0
		if maxCount > 0 {
			percent = b.Count * 100 / maxCount
		}
		rows[i] = BarRow{
			Label:   fmt.Sprintf("%.1f – %.1f", b.Low, b.High),
			Count:   b.Count,
			Percent: percent,
		}
	}
	return rows
}
