package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"beatsite/internal/logging"
)

// w3cFields is the #Fields directive for the access log.
const w3cFields = "#Fields: date time c-ip cs-method cs-uri-stem cs-uri-query sc-status sc-bytes time-taken sc(Content-Encoding) sc(X-Search-State) cs(User-Agent) cs(Referer)"

// responseWriter captures the status code and bytes written.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
	wroteHeader  bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += int64(n)
	return n, err
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// LoggingConfig holds configuration for the logging middleware
type LoggingConfig struct {
	SkipPaths       []string
	SkipExtensions  []string
	LogStaticFiles  bool
	LogHealthChecks bool
}

// DefaultLoggingConfig skips static assets and logs health checks.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:       []string{},
		SkipExtensions:  []string{".css", ".js", ".ico", ".png", ".svg", ".woff", ".woff2"},
		LogStaticFiles:  false,
		LogHealthChecks: true,
	}
}

var healthCheckPaths = map[string]bool{
	"/health":  true,
	"/healthz": true,
	"/livez":   true,
	"/readyz":  true,
}

// accessEntry is one W3C Extended Log Format line.
type accessEntry struct {
	at          time.Time
	clientIP    string
	method      string
	uriStem     string
	uriQuery    string
	status      int
	bytes       int64
	took        time.Duration
	encoding    string
	searchState string
	userAgent   string
	referer     string
}

func newAccessEntry(r *http.Request, rw *responseWriter, took time.Duration) accessEntry {
	return accessEntry{
		at:          time.Now().UTC(),
		clientIP:    sanitizeLogField(getClientIP(r)),
		method:      sanitizeLogField(r.Method),
		uriStem:     sanitizeLogField(r.URL.Path),
		uriQuery:    orDash(sanitizeLogField(r.URL.RawQuery)),
		status:      rw.statusCode,
		bytes:       rw.bytesWritten,
		took:        took,
		encoding:    orDash(rw.Header().Get("Content-Encoding")),
		searchState: orDash(rw.Header().Get("X-Search-State")),
		userAgent:   orDash(escapeW3CField(sanitizeLogField(r.Header.Get("User-Agent")))),
		referer:     orDash(escapeW3CField(sanitizeLogField(r.Header.Get("Referer")))),
	}
}

func (e accessEntry) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %d %d %d %s %s %s %s",
		e.at.Format("2006-01-02"),
		e.at.Format("15:04:05"),
		e.clientIP,
		e.method,
		e.uriStem,
		e.uriQuery,
		e.status,
		e.bytes,
		e.took.Milliseconds(),
		e.encoding,
		e.searchState,
		e.userAgent,
		e.referer,
	)
}

// Logger returns HTTP logging middleware using W3C Extended Log Format
func Logger(config LoggingConfig) func(http.Handler) http.Handler {
	logging.Printf("%s", w3cFields)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shouldSkip(r.URL.Path, config) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			logging.Printf("%s", newAccessEntry(r, wrapped, time.Since(start)))
		})
	}
}

// sanitizeLogField strips control characters that could forge log lines or
// inject terminal escapes. Newlines become spaces; tabs are kept.
func sanitizeLogField(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r':
			return ' '
		case r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func shouldSkip(path string, config LoggingConfig) bool {
	for _, skipPath := range config.SkipPaths {
		if strings.HasPrefix(path, skipPath) {
			return true
		}
	}

	if !config.LogHealthChecks && healthCheckPaths[path] {
		return true
	}

	if !config.LogStaticFiles {
		lower := strings.ToLower(path)
		for _, ext := range config.SkipExtensions {
			if strings.HasSuffix(lower, ext) {
				return true
			}
		}
	}

	return false
}

// getClientIP prefers proxy headers over the connection address.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// escapeW3CField quotes values containing spaces, tabs or quotes.
func escapeW3CField(s string) string {
	if strings.ContainsAny(s, " \t\"") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
