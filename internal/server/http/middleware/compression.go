package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/vegdelivery/internal/server/http/dto"
)

// DefaultMaxRequestBody bounds decompressed request payloads.
const DefaultMaxRequestBody int64 = 1 << 20

// DecompressRequest inflates gzip encoded request bodies and caps the
// inflated size at limit bytes. Reads past the cap fail, which surfaces as a
// bind error in handlers. A non-positive limit uses DefaultMaxRequestBody.
func DecompressRequest(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		limit = DefaultMaxRequestBody
	}
	return func(c *gin.Context) {
		encoding := strings.ToLower(c.GetHeader("Content-Encoding"))
		if !strings.Contains(encoding, "gzip") {
			c.Next()
			return
		}

		body := c.Request.Body
		defer body.Close()

		inflated, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed gzip body"})
			return
		}
		defer inflated.Close()

		c.Request.Body = http.MaxBytesReader(c.Writer, io.NopCloser(inflated), limit)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
