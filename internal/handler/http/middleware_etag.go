package http

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/MKhiriev/vedicas-garden/internal/utils"
)

// withETag buffers a 200 response, tags it with a fingerprint of its body
// and answers 304 Not Modified when the client already holds that version.
func withETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(bw, r)

		if bw.status != http.StatusOK {
			w.WriteHeader(bw.status)
			w.Write(bw.buf.Bytes())
			return
		}

		tag := `"` + utils.Fingerprint(bw.buf.Bytes()) + `"`
		w.Header().Set("ETag", tag)
		if matchesETag(r.Header.Get("If-None-Match"), tag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(bw.buf.Bytes())
	})
}

func matchesETag(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == tag || candidate == "*" {
			return true
		}
	}
	return false
}

// bufferedWriter holds the body and status until the wrapping middleware
// decides what to send.
type bufferedWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	buf         bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}
