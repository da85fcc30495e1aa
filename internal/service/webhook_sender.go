package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRetryIntervals are the waits between delivery attempts.
var DefaultRetryIntervals = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	15 * time.Second,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookSender delivers signed webhooks the way a trusted sender would.
// Each attempt is signed with a fresh timestamp so retries stay inside the
// receiver's freshness window.
type WebhookSender struct {
	validator      *RequestValidator
	httpClient     HTTPClient
	retryIntervals []time.Duration
	log            zerolog.Logger
}

// NewWebhookSender creates a sender. retryIntervals nil means DefaultRetryIntervals;
// an empty slice disables retries.
func NewWebhookSender(validator *RequestValidator, httpClient HTTPClient, retryIntervals []time.Duration, log zerolog.Logger) *WebhookSender {
	if retryIntervals == nil {
		retryIntervals = DefaultRetryIntervals
	}
	return &WebhookSender{
		validator:      validator,
		httpClient:     httpClient,
		retryIntervals: retryIntervals,
		log:            log,
	}
}

// Send POSTs body to target with signature headers, retrying on transport
// errors and non-2xx responses. It returns the last status code seen.
func (s *WebhookSender) Send(ctx context.Context, target string, body []byte, key []byte) (int, error) {
	u, err := url.Parse(target)
	if err != nil {
		return 0, fmt.Errorf("parsing webhook url: %w", err)
	}

	var lastErr error
	lastStatus := 0
	for attempt := 0; attempt <= len(s.retryIntervals); attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, s.retryIntervals[attempt-1]); err != nil {
				return lastStatus, err
			}
		}

		status, err := s.deliver(ctx, u, body, key)
		if err != nil {
			lastErr = err
			s.log.Warn().Err(err).Str("url", u.Redacted()).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		lastStatus = status

		if status >= 200 && status < 300 {
			s.log.Info().Str("url", u.Redacted()).Int("attempt", attempt+1).Int("status", status).Msg("webhook: delivered successfully")
			return status, nil
		}

		lastErr = fmt.Errorf("webhook rejected with status %d", status)
		s.log.Warn().Str("url", u.Redacted()).Int("attempt", attempt+1).Int("status", status).Msg("webhook: non-2xx response, retrying")
	}

	s.log.Error().Str("url", u.Redacted()).Msg("webhook: all retry attempts exhausted")
	return lastStatus, fmt.Errorf("webhook delivery failed after %d attempts: %w", len(s.retryIntervals)+1, lastErr)
}

func (s *WebhookSender) deliver(ctx context.Context, u *url.URL, body []byte, key []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := s.validator.SignRequest(req, body, key); err != nil {
		return 0, fmt.Errorf("signing request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
