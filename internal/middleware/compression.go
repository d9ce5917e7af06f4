package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/inzzo/inzzo-landing/pkg/logger"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// CompressibleTypes are the media types worth gzipping
var CompressibleTypes = map[string]struct{}{
	"text/html":              {},
	"text/css":               {},
	"text/xml":               {},
	"application/json":       {},
	"application/javascript": {},
}

// CompressionMiddleware gzips textual responses of at least minSize bytes
// for clients that accept gzip. Responses are buffered until the handler returns.
func CompressionMiddleware(level, minSize int) gin.HandlerFunc {
	writers := sync.Pool{
		New: func() any {
			w, err := gzip.NewWriterLevel(nil, level)
			if err != nil {
				// Level is validated at config load; fall back rather than panic
				w = gzip.NewWriter(nil)
			}
			return w
		},
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead || !acceptsGzip(c.GetHeader("Accept-Encoding")) {
			c.Next()
			return
		}

		original := c.Writer
		bw := &bufferedWriter{ResponseWriter: original, status: http.StatusOK}
		c.Writer = bw
		defer func() { c.Writer = original }()

		c.Next()

		c.Writer = original
		body := bw.buf.Bytes()

		if !shouldCompress(original.Header(), bw.status, len(body), minSize) {
			original.WriteHeader(bw.status)
			if len(body) > 0 {
				_, _ = original.Write(body) //nolint:errcheck // client went away
			}
			return
		}

		gz, ok := writers.Get().(*gzip.Writer)
		if !ok {
			gz = gzip.NewWriter(nil)
		}
		defer writers.Put(gz)

		var compressed bytes.Buffer
		gz.Reset(&compressed)
		_, err := gz.Write(body)
		if err == nil {
			err = gz.Close()
		}
		if err != nil {
			logger.Warn("Response compression failed, sending identity body", zap.Error(err))
			original.WriteHeader(bw.status)
			_, _ = original.Write(body) //nolint:errcheck // client went away
			return
		}

		h := original.Header()
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")

		original.WriteHeader(bw.status)
		_, _ = original.Write(compressed.Bytes()) //nolint:errcheck // client went away
	}
}

func shouldCompress(h http.Header, status, size, minSize int) bool {
	if size == 0 || size < minSize {
		return false
	}
	if status < 200 || status == http.StatusNoContent || status == http.StatusNotModified {
		return false
	}
	// Content-Range describes identity bytes
	if status == http.StatusPartialContent || h.Get("Content-Range") != "" {
		return false
	}
	if h.Get("Content-Encoding") != "" {
		return false
	}
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(h.Get("Content-Type"), ";", 2)[0]))
	_, ok := CompressibleTypes[mediaType]
	return ok
}

func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		coding := strings.ToLower(strings.TrimSpace(fields[0]))
		if coding != "gzip" && coding != "*" {
			continue
		}
		rejected := false
		for _, param := range fields[1:] {
			param = strings.ReplaceAll(strings.TrimSpace(param), " ", "")
			if param == "q=0" || param == "q=0.0" || param == "q=0.00" || param == "q=0.000" {
				rejected = true
			}
		}
		if !rejected {
			return true
		}
	}
	return false
}

// bufferedWriter holds the response body so the size threshold can be
// checked before any bytes reach the client
type bufferedWriter struct {
	gin.ResponseWriter
	buf     bytes.Buffer
	status  int
	written bool
}

func (w *bufferedWriter) WriteHeader(code int) {
	if code > 0 && !w.written {
		w.status = code
	}
}

func (w *bufferedWriter) WriteHeaderNow() {
	w.written = true
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	w.written = true
	return w.buf.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.written = true
	return w.buf.WriteString(s)
}

func (w *bufferedWriter) Status() int {
	return w.status
}

func (w *bufferedWriter) Size() int {
	if !w.written {
		return -1
	}
	return w.buf.Len()
}

func (w *bufferedWriter) Written() bool {
	return w.written
}

// Flush is a no-op; the body is released when the handler chain returns
func (w *bufferedWriter) Flush() {}
