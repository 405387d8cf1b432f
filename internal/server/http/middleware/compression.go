package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest transparently inflates gzip-encoded request bodies.
// Response compression is handled by the gzip middleware on the router.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			reader, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "malformed gzip body"})
				return
			}
			defer reader.Close()
			c.Request.Body = reader
			c.Request.Header.Del("Content-Encoding")
		}
		c.Next()
	}
}
