package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// untrackedPrefixes are paths whose requests are not logged.
var untrackedPrefixes = []string{"/static/", "/favicon", "/healthz"}

// generateSalt returns a random per-process salt for hashing client addresses.
func generateSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("generate salt: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// hashIP hashes a client address so logs never hold it in the clear.
// The result is stable per address for the life of the process.
func hashIP(ip, salt string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// requestID tags every request with an id, reusing one sent by a proxy.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs one line per request. Static assets are skipped and the
// client hash is left out when the visitor sends Do Not Track.
func requestLogger(log *slog.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		}
		if c.GetHeader("DNT") != "1" {
			attrs = append(attrs, "client", hashIP(c.ClientIP(), salt))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("http.request", attrs...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("http.request", attrs...)
		default:
			log.Info("http.request", attrs...)
		}
	}
}

func recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Error("http.panic", "path", c.Request.URL.Path, "err", err, "request_id", c.GetString("request_id"))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
