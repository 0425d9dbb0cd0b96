package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/domain/services"
)

// CacheConfig configures the response cache middleware
type CacheConfig struct {
	Expiration time.Duration             // cache entry TTL
	KeyFunc    func(*gin.Context) string // cache key generator
}

// defaultKeyFunc keys an entry on the path plus the sorted query string
func defaultKeyFunc(c *gin.Context) string {
	path := c.Request.URL.Path

	queryParams := c.Request.URL.Query()
	var queryKeys []string
	for key := range queryParams {
		queryKeys = append(queryKeys, key)
	}
	sort.Strings(queryKeys)

	var queryString string
	for _, key := range queryKeys {
		values := queryParams[key]
		sort.Strings(values)
		for _, value := range values {
			queryString += key + "=" + value + "&"
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(path + "?" + queryString))
	return "rescache:" + hex.EncodeToString(hasher.Sum(nil))
}

// Cache serves GET responses from Redis for the configured TTL. When Redis is
// not configured or unreachable the request falls straight through to the
// handler, so the middleware never turns a cache problem into a request
// failure. Only 200 responses are stored.
func Cache(redisService services.InterfaceRedisService, config ...CacheConfig) gin.HandlerFunc {
	var cfg CacheConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = 1 * time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = defaultKeyFunc
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || redisService == nil {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)

		if content, err := redisService.GetBytes(key); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			// Best effort; a failed store just means the next request
			// hits the database again.
			_ = redisService.SetBytes(key, writer.body.Bytes(), cfg.Expiration)
		}
	}
}

// responseWriter captures the response body while writing it through
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
