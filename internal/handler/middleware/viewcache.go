package middleware

import (
	"bytes"
	"net/http"

	"invoice-dashboard/internal/infra/viewcache"

	"github.com/gin-gonic/gin"
)

const ViewCacheHeader = "X-View-Cache"

type ViewCacheMetrics interface {
	ObserveViewCache(path string, hit bool)
}

type ViewCacheMiddleware struct {
	store   viewcache.Store
	metrics ViewCacheMetrics
}

func NewViewCacheMiddleware(store viewcache.Store, metrics ViewCacheMetrics) *ViewCacheMiddleware {
	return &ViewCacheMiddleware{
		store:   store,
		metrics: metrics,
	}
}

// CacheView serves the stored render of path when present and records
// successful renders otherwise. Entries are kept per signed-in user and
// query string so one invalidation drops all of them.
func (m *ViewCacheMiddleware) CacheView(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		variant := variantKey(c)

		if e, ok := m.store.Get(ctx, path, variant); ok {
			m.metrics.ObserveViewCache(path, true)
			c.Header(ViewCacheHeader, "HIT")
			c.Data(e.Status, e.ContentType, e.Body)
			c.Abort()
			return
		}
		m.metrics.ObserveViewCache(path, false)
		c.Header(ViewCacheHeader, "MISS")

		// read before rendering so a mutation committed meanwhile wins
		gen, cacheable := m.store.Generation(ctx, path)

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()
		c.Writer = w.ResponseWriter

		if !cacheable || w.Status() != http.StatusOK || len(c.Errors) > 0 {
			return
		}
		m.store.Set(ctx, path, variant, gen, viewcache.Entry{
			Status:      w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		})
	}
}

func variantKey(c *gin.Context) string {
	var user string
	if id, ok := GetUserID(c); ok {
		user = id.String()
	}
	return user + "?" + c.Request.URL.RawQuery
}

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
