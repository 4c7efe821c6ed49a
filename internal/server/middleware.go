package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// Paths that are not worth an access log line outside dev mode.
var quietPrefixes = []string{"/static/", "/assets/", "/favicon", "/healthz"}

// clientHasher hashes client IPs with a per-process salt, so logs can tell
// visitors apart without ever holding a raw address.
type clientHasher struct {
	salt []byte
}

func newClientHasher() *clientHasher {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		panic("server: failed to generate salt: " + err.Error())
	}
	return &clientHasher{salt: salt}
}

func (h *clientHasher) hash(ip string) string {
	sum := sha256.New()
	sum.Write(h.salt)
	sum.Write([]byte(ip))
	return hex.EncodeToString(sum.Sum(nil))[:16]
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLog replaces gin's text logger with structured zap lines.
func accessLog(logger *zap.Logger, hasher *clientHasher, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		if !dev && isQuiet(path) {
			return
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		}
		// Respect Do Not Track.
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, zap.String("client", hasher.hash(c.ClientIP())))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("Request failed", fields...)
		case status >= 400:
			logger.Warn("Request rejected", fields...)
		default:
			logger.Info("Request served", fields...)
		}
	}
}

func isQuiet(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// cacheControl sets the caching policy for a group of routes. Dev mode
// disables caching everywhere so edits show up on reload.
func cacheControl(dev bool, policy string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		if dev {
			h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")
		} else if policy != "" {
			h.Set("Cache-Control", policy)
		}
		c.Next()
	}
}
