package servicedesk

import (
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

// loggingTransport wraps an http.RoundTripper, logging request/response
// metadata at V(1) and headers at V(2).
type loggingTransport struct {
	inner  http.RoundTripper
	logger logr.Logger
}

func newLoggingTransport(inner http.RoundTripper, l logr.Logger) *loggingTransport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	return &loggingTransport{inner: inner, logger: l}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	route := req.URL.Path
	t.logger.V(1).Info("request", "method", req.Method, "route", route)
	t.logger.V(2).Info("request headers", "headers", redactHeaders(req.Header))
	start := time.Now()

	resp, err := t.inner.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.logger.Error(err, "request failed", "method", req.Method, "route", route)
		return nil, err
	}

	t.logger.V(1).Info("response", "method", req.Method, "route", route, "status", resp.StatusCode, "elapsed_ms", elapsed.Milliseconds())
	if resp.Header != nil {
		t.logger.V(2).Info("response headers", "headers", redactHeaders(resp.Header))
	}

	return resp, nil
}

// sensitiveHeaders carry session material and are never logged verbatim.
var sensitiveHeaders = []string{"Authorization", "Cookie", "Set-Cookie"}

// redactHeaders returns a copy of headers with session values replaced.
func redactHeaders(h http.Header) http.Header {
	redacted := h.Clone()
	for _, name := range sensitiveHeaders {
		if len(redacted.Values(name)) > 0 {
			redacted.Set(name, "[REDACTED]")
		}
	}
	return redacted
}
