package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipPool = struct {
	writers sync.Pool
	readers sync.Pool
}{
	writers: sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }},
	readers: sync.Pool{New: func() any { return new(gzip.Reader) }},
}

// withGZip inflates gzip request bodies and deflates responses for clients
// that advertise gzip in Accept-Encoding. Readers and writers are pooled.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateRequestBody(w, req) {
				return
			}
		}

		if !acceptsGzip(req) {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipPool.writers.Get().(*gzip.Writer)
		zw.Reset(w)
		defer func() {
			zw.Close()
			gzipPool.writers.Put(zw)
		}()

		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(&deflatingWriter{ResponseWriter: w, zw: zw}, req)
	})
}

func acceptsGzip(req *http.Request) bool {
	for _, enc := range strings.Split(req.Header.Get("Accept-Encoding"), ",") {
		if strings.HasPrefix(strings.TrimSpace(enc), "gzip") {
			return true
		}
	}
	return false
}

// inflateRequestBody swaps req.Body for an inflating reader. It reports false
// after answering 400 when the body is not valid gzip.
func inflateRequestBody(w http.ResponseWriter, req *http.Request) bool {
	zr := gzipPool.readers.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipPool.readers.Put(zr)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	req.Body = &inflatedBody{zr: zr, underlying: req.Body}
	req.Header.Del("Content-Encoding")
	req.ContentLength = -1
	return true
}

// inflatedBody returns its gzip.Reader to the pool exactly once on Close.
type inflatedBody struct {
	zr         *gzip.Reader
	underlying io.ReadCloser
	closed     bool
}

func (b *inflatedBody) Read(p []byte) (int, error) { return b.zr.Read(p) }

func (b *inflatedBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.zr.Close()
	gzipPool.readers.Put(b.zr)
	return b.underlying.Close()
}

type deflatingWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *deflatingWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *deflatingWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}
