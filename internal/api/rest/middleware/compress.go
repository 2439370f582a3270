// Package middleware provides various middleware functionality.
package middleware

import (
	"compress/gzip"
	"net/http"
	"strconv"
	"strings"
)

// gzipResponseWriter routes the response body through a gzip writer while leaving
// header handling to the wrapped http.ResponseWriter.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.gz.Write(b)
}

// acceptsGzip reports whether an Accept-Encoding header allows a gzip response
// body. A gzip entry with a zero quality value is an explicit refusal.
func acceptsGzip(header string) bool {
	for _, entry := range strings.Split(header, ",") {
		fields := strings.Split(strings.TrimSpace(entry), ";")
		if fields[0] != "gzip" {
			continue
		}
		for _, param := range fields[1:] {
			param = strings.TrimSpace(param)
			if q := strings.TrimPrefix(param, "q="); q != param {
				if qv, err := strconv.ParseFloat(q, 64); err == nil && qv == 0 {
					return false
				}
			}
		}
		return true
	}
	return false
}

// CompressHandle serves as a middleware handler compressing response bodies with
// gzip for clients that negotiate it.
func CompressHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}
		gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer gz.Close()
		w.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(gzipResponseWriter{ResponseWriter: w, gz: gz}, r)
	})
}

// DecompressHandle serves as a middleware handler transparently inflating gzip
// request bodies. A declared but malformed gzip body is a client error.
func DecompressHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer gz.Close()
		r.Body = gz
		next.ServeHTTP(w, r)
	})
}
