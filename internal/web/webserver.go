// Package web provides the HTTP server and web interface for the grade
// distribution analyzer.
package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/config"
	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/database"
	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/models"
)

// Server represents the web server.
type Server struct {
	DB        *database.Database
	Router    *gin.Engine
	Config    *config.WebConfig
	Buckets   int       // histogram buckets per analysis
	StartTime time.Time // Track server start time for uptime calculations
}

// TemplateData represents common template data.
type TemplateData struct {
	Title       string
	CurrentTime string
	Port        int
	AppVersion  string
}

// AnalysisPageData represents data for the server-rendered result page.
type AnalysisPageData struct {
	TemplateData
	Input   string
	Result  *models.AnalysisResult
	BarRows []BarRow
}

// BarRow is one histogram bucket prepared for the no-script HTML bar chart.
type BarRow struct {
	Label   string
	Count   int
	Percent int // bar width, 0-100 relative to the fullest bucket
}

// StatsPageData represents data for the usage stats page.
type StatsPageData struct {
	TemplateData
	Usage *models.UsageStats
}

// NewServer creates a new web server instance.
func NewServer(db *database.Database, webconfig *config.WebConfig, buckets int) *Server {
	// Set Gin to release mode for production
	if !webconfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Trust only common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	router.Use(secure.New(secureConfig))

	server := &Server{
		DB:      db,
		Router:  router,
		Config:  webconfig,
		Buckets: config.ClampBuckets(buckets),
	}

	router.Use(server.ReverseProxyMiddleware())

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Static files first (highest priority), served from the embedded FS
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))

	s.Router.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	s.Router.GET("/robots.txt", func(c *gin.Context) {
		c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
	})
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	// API base routes redirect to the form page
	s.Router.GET("/api", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/")
	})
	s.Router.GET("/api/v1", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/")
	})

	// API routes
	s.Router.GET("/api/v1/analyze", s.apiAnalyze)
	s.Router.POST("/api/v1/analyze", s.apiAnalyze)
	s.Router.GET("/api/v1/stats", s.getStats)
	s.Router.GET("/api/v1/stats/", s.getStats)

	// Page routes
	s.Router.GET("/", s.homePage)
	s.Router.POST("/analyze", s.analyzePage)
	s.Router.GET("/stats", s.statsPage)
	s.Router.GET("/stats/", s.statsPage)
}

// Start starts the web server with SSL support if configured.
func (s *Server) Start() error {
	addr := ":" + strconv.Itoa(s.Config.ListenPort)
	s.StartTime = time.Now() // Set the start time for uptime calculations
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	}
	log.Printf("Starting HTTP server on %s", addr)
	return s.Router.Run(addr)
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a
// reverse proxy.
func (s *Server) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}

		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			// Take the first IP from the list (original client)
			ips := strings.Split(xff, ",")
			if len(ips) > 0 {
				clientIP := strings.TrimSpace(ips[0])
				c.Request.RemoteAddr = clientIP + ":0"
			}
		}

		if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
			c.Request.RemoteAddr = realIP + ":0"
		}

		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}

		c.Next()
	}
}

// ApacheLogFormat returns an access log middleware in common log format.
func (s *Server) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
