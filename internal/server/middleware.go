package server

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	// maxBodyBytes bounds every request body.
	maxBodyBytes = 1 << 20
	// maxLoggedBody caps how much of a request body ends up in the log.
	maxLoggedBody = 2048
)

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		// Log request
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		logged := body
		if len(logged) > maxLoggedBody {
			logged = logged[:maxLoggedBody]
		}
		log.Printf("REQ: %s %s - Body: %s", r.Method, r.URL.Path, string(logged))

		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(wrapper, http.StatusRequestEntityTooLarge, "Request body too large")
		case err != nil:
			writeError(wrapper, http.StatusBadRequest, "Invalid request body")
		default:
			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(wrapper, r)
		}

		duration := time.Since(start)
		log.Printf("RES: %d - %s %s - %v", wrapper.statusCode, r.Method, r.URL.Path, duration)
	})
}

type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// requireAdmin guards the admin routes with a bearer token. With no token
// configured any bearer value is accepted.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if s.adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
