package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed static/*
var EmbeddedStaticFS embed.FS

// EmbeddedStaticHandler returns a Gin handler serving the embedded static
// files. The assets ship inside the binary so no web/static directory is
// needed next to the executable.
func EmbeddedStaticHandler(prefix string) gin.HandlerFunc {
	staticFS, err := fs.Sub(EmbeddedStaticFS, "static")
	if err != nil {
		panic("Failed to create embedded static filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(staticFS))

	return func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, prefix)
		if path == "" || path == "/" {
			// Static directory has no index file, return 404
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		c.Request.URL.Path = path

		c.Header("Cache-Control", "public, max-age=3600") // browser caches an hour

		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
