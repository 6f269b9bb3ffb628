package httpclient

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultTimeout = 30 * time.Second
)

// New crea el *http.Client que comparten los adapters de naming.
// timeout <= 0 => DefaultTimeout.
func New(timeout time.Duration, logger *zap.Logger) *http.Client {
	return NewWithTransport(timeout, nil, logger)
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper, logger *zap.Logger) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	if logger != nil {
		tr = &loggingTransport{base: tr, logger: logger.Named("upstream")}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: tr,
	}
}

// loggingTransport loguea cada llamada upstream (sin query ni headers: llevan API keys).
type loggingTransport struct {
	base   http.RoundTripper
	logger *zap.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
		zap.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		t.logger.Warn("upstream request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	t.logger.Debug("upstream request", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}
