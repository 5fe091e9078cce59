package httpclient

import (
	"net/http"
	"time"

	"livestock-registry/internal/platform/logger"
)

const (
	DefaultTimeout = 90 * time.Second
)

// New crea un *http.Client para adapters salientes (p.ej. Gemini) que loguea
// cada request sin headers ni query (llevan la API key).
func New(timeout time.Duration, log logger.Logger) *http.Client {
	return NewWithTransport(timeout, nil, log)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper, log logger.Logger) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	if log == nil {
		log = logger.Nop()
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingTransport{next: tr, log: log.With(map[string]any{"module": "httpclient"})},
	}
}

type loggingTransport struct {
	next http.RoundTripper
	log  logger.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := map[string]any{
		"method":      req.Method,
		"host":        req.URL.Host,
		"path":        req.URL.Path,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		fields["error"] = err.Error()
		t.log.Warn("outbound request failed", fields)
		return nil, err
	}
	fields["status"] = resp.StatusCode
	if resp.StatusCode >= 500 {
		t.log.Warn("outbound request", fields)
	} else {
		t.log.Debug("outbound request", fields)
	}
	return resp, nil
}
