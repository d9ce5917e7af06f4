package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CacheControlStatic = "public, max-age=31536000"
	CacheControlHTML   = "no-cache, must-revalidate"
	CacheControlAPI    = "no-store, no-cache, must-revalidate, private"
)

// CacheControlMiddleware sets Cache-Control by path: static assets are cached
// for a year, HTML is always revalidated and API responses are never stored
func CacheControlMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		switch {
		case strings.Contains(path, "static"):
			c.Header("Cache-Control", CacheControlStatic)
		case path == "/" || strings.HasSuffix(path, ".html"):
			c.Header("Cache-Control", CacheControlHTML)
		case strings.HasPrefix(path, "/api/"):
			c.Header("Cache-Control", CacheControlAPI)
			c.Header("Pragma", "no-cache")
		}

		c.Next()
	}
}
