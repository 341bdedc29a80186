package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Redis lookups get a short deadline so a slow cache never stalls a
// computation that takes microseconds.
const lookupTimeout = 2 * time.Second

type cachedResponse struct {
	Code int    `json:"code"`
	Body []byte `json:"body"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// ResponseCache replays answers for repeated POST bodies. Every analysis
// endpoint is a pure function of its request body, so route + body hash
// fully identifies the response. Cache failures degrade to recomputing;
// only 200s are stored.
func ResponseCache(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost {
				return next(c)
			}

			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			key := cacheKey(c.Path(), body)
			ctx, cancel := context.WithTimeout(req.Context(), lookupTimeout)
			defer cancel()

			if cur, err := loadResponse(ctx, rdb, key); err == nil && cur.Code != 0 {
				return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.code == http.StatusOK {
				_ = saveResponse(context.Background(), rdb, key,
					cachedResponse{Code: rec.code, Body: rec.buf.Bytes()}, ttl)
			}
			return nil
		}
	}
}
