package helpers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type transportWithLogger struct {
	Transport http.RoundTripper
}

func NewTransportWithLogger(transport http.RoundTripper) *transportWithLogger {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &transportWithLogger{Transport: transport}
}

// RoundTrip logs every content fetch. Bodies are not logged, only their size.
func (t *transportWithLogger) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("Content request:")

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		log.Warn().Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("latency", time.Since(start)).
			Msg("Content request failed:")
		return resp, err
	}

	event := log.Info()
	switch {
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		event = log.Warn()
	case resp.StatusCode >= http.StatusInternalServerError:
		event = log.Error()
	}

	event.Str("method", resp.Request.Method).
		Str("url", resp.Request.URL.String()).
		Int("status", resp.StatusCode).
		Int64("size", resp.ContentLength).
		Dur("latency", time.Since(start)).
		Msg("Content response:")

	return resp, err
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: NewTransportWithLogger(http.DefaultTransport),
		Timeout:   timeout,
	}
}
