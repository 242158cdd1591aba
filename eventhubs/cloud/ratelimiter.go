package cloud

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// ARM subscription-scoped write budget is 1200 per hour; stay under it.
	defaultRequestLimit = 1200

	limitPeriod = 3600.0
	burstPeriod = 60.0
)

// Headers ARM attaches to responses with the remaining per-subscription call
// budget for the current window.
var remainingHeaders = []string{
	"x-ms-ratelimit-remaining-subscription-writes",
	"x-ms-ratelimit-remaining-subscription-reads",
	"x-ms-ratelimit-remaining-subscription-deletes",
}

type rateLimiter struct {
	limiter *rate.Limiter
	logger  *zap.Logger
}

func newRateLimiter(limit int, logger *zap.Logger) *rateLimiter {
	return &rateLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(limit)/limitPeriod), int(float64(limit)/burstPeriod)),
		logger:  logger,
	}
}

// transport wraps 'next' so every attempt waits on the client-side limiter
// and the server-reported remaining budget is surfaced when it runs low.
func (r *rateLimiter) transport(next http.RoundTripper) http.RoundTripper {
	return &rateLimitedTransport{limiter: r, next: next}
}

type rateLimitedTransport struct {
	limiter *rateLimiter
	next    http.RoundTripper
}

func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	for _, header := range remainingHeaders {
		value := resp.Header.Get(header)
		if value == "" {
			continue
		}
		remaining, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		if remaining == 0 {
			t.limiter.logger.Warn("subscription rate limit exhausted",
				zap.String("header", header),
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()))
		}
	}
	return resp, nil
}
