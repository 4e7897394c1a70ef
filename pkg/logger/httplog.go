package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// HTTPLogger writes one access-log line per request to a separate file so
// traffic analysis does not have to be untangled from application logs.
// When HTTP_LOG_FILE is unset the logger is a no-op.
type HTTPLogger struct {
	mu sync.Mutex
	w  io.WriteCloser
}

// NewHTTPLogger opens the access log named by HTTP_LOG_FILE, creating it if
// needed and appending to it across restarts.
func NewHTTPLogger() (*HTTPLogger, error) {
	path := os.Getenv("HTTP_LOG_FILE")
	if path == "" {
		return &HTTPLogger{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open http log %s: %w", path, err)
	}

	return &HTTPLogger{w: f}, nil
}

// LogRequest appends a single access-log line in a combined-log style.
func (l *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	if l.w == nil {
		return
	}

	line := fmt.Sprintf("%s [%s] \"%s %s\" %d %dms %q %s\n",
		ip,
		time.Now().UTC().Format(time.RFC3339),
		method,
		uri,
		status,
		latency.Milliseconds(),
		userAgent,
		requestID,
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

// Close flushes and closes the underlying file.
func (l *HTTPLogger) Close() error {
	if l.w == nil {
		return nil
	}
	return l.w.Close()
}
