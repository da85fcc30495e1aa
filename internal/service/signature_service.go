package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"hash"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"webhook-verifier/internal/core/domain"
	"webhook-verifier/pkg/apperror"
)

const (
	DefaultTimestampHeader = "MessageBird-Request-Timestamp"
	DefaultSignatureHeader = "MessageBird-Signature"
	DefaultMaxAge          = 100 * time.Second
)

var errNonPositiveTimestamp = errors.New("timestamp must be after the unix epoch")

// Options configures a RequestValidator. Zero fields take the defaults above;
// Hash defaults to SHA-256 and is used for both the body digest and the HMAC.
type Options struct {
	TimestampHeader string
	SignatureHeader string
	MaxAge          time.Duration
	Hash            func() hash.Hash
}

// Option customizes a RequestValidator beyond Options.
type Option func(*RequestValidator)

// WithClock overrides the time source used by the freshness check.
func WithClock(now func() time.Time) Option {
	return func(v *RequestValidator) {
		v.now = now
	}
}

// RequestValidator implements ports.RequestValidator using HMAC over
// timestamp, canonical query and body digest. It holds no mutable state and
// is safe for concurrent use.
type RequestValidator struct {
	opts Options
	now  func() time.Time
}

// NewRequestValidator creates a validator with opts, filling in defaults.
func NewRequestValidator(opts Options, extra ...Option) *RequestValidator {
	if opts.TimestampHeader == "" {
		opts.TimestampHeader = DefaultTimestampHeader
	}
	if opts.SignatureHeader == "" {
		opts.SignatureHeader = DefaultSignatureHeader
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if opts.Hash == nil {
		opts.Hash = sha256.New
	}

	v := &RequestValidator{opts: opts, now: time.Now}
	for _, o := range extra {
		o(v)
	}
	return v
}

func (v *RequestValidator) TimestampHeader() string { return v.opts.TimestampHeader }
func (v *RequestValidator) SignatureHeader() string { return v.opts.SignatureHeader }
func (v *RequestValidator) MaxAge() time.Duration   { return v.opts.MaxAge }

// BuildPayload returns timestamp + "\n" + canonical query + "\n" + Hash(body).
func (v *RequestValidator) BuildPayload(timestamp string, query url.Values, body []byte) ([]byte, error) {
	if timestamp == "" {
		return nil, apperror.ErrMissingTimestamp()
	}

	h := v.opts.Hash()
	h.Write(body)
	bodyDigest := h.Sum(nil)

	prefix := timestamp + "\n" + Canonicalize(query) + "\n"
	payload := make([]byte, 0, len(prefix)+len(bodyDigest))
	payload = append(payload, prefix...)
	return append(payload, bodyDigest...), nil
}

// Generate computes HMAC(key, payload) for the given request parts.
func (v *RequestValidator) Generate(timestamp string, query url.Values, body []byte, key []byte) ([]byte, error) {
	payload, err := v.BuildPayload(timestamp, query, body)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(v.opts.Hash, key)
	mac.Write(payload)
	return mac.Sum(nil), nil
}

// Sign returns the base64-encoded signature a sender puts in the signature header.
func (v *RequestValidator) Sign(timestamp string, query url.Values, body []byte, key []byte) (string, error) {
	digest, err := v.Generate(timestamp, query, body, key)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(digest), nil
}

// SignRequest stamps r with the current timestamp and a matching signature.
// body must be the exact bytes r will carry.
func (v *RequestValidator) SignRequest(r *http.Request, body []byte, key []byte) error {
	timestamp := strconv.FormatInt(v.now().Unix(), 10)
	signature, err := v.Sign(timestamp, r.URL.Query(), body, key)
	if err != nil {
		return err
	}
	r.Header.Set(v.opts.TimestampHeader, timestamp)
	r.Header.Set(v.opts.SignatureHeader, signature)
	return nil
}

// IsValid decodes signature from base64 and compares it to digest in constant
// time. A value that is not valid base64 is reported as a mismatch.
func (v *RequestValidator) IsValid(signature string, digest []byte) (bool, error) {
	if signature == "" {
		return false, apperror.ErrMissingSignature()
	}

	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, nil
	}
	return hmac.Equal(decoded, digest), nil
}

// IsRecent reports whether now - timestamp is strictly below MaxAge, in whole
// seconds. Timestamps in the future count as recent.
func (v *RequestValidator) IsRecent(timestamp string) (bool, error) {
	if timestamp == "" {
		return false, apperror.ErrMissingTimestamp()
	}

	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return false, apperror.ErrInvalidTimestamp(err)
	}

	age := v.now().Unix() - ts
	return float64(age) < v.opts.MaxAge.Seconds(), nil
}

// ReplayTTL is how long a signature must be remembered to stop replays: the
// freshness window, stretched to cover timestamps that lie in the future.
// An unparseable timestamp gets MaxAge.
func (v *RequestValidator) ReplayTTL(timestamp string) time.Duration {
	ttl := v.opts.MaxAge
	ts, err := parseTimestamp(timestamp)
	if err != nil {
		return ttl
	}
	if ahead := time.Duration(ts-v.now().Unix()) * time.Second; ahead > 0 {
		ttl += ahead
	}
	return ttl
}

// Validate checks the signature first and freshness second, so a forged
// request is reported as a mismatch even when it is also stale.
func (v *RequestValidator) Validate(req domain.WebhookRequest, key []byte) error {
	timestamp := req.HeaderValue(v.opts.TimestampHeader)

	digest, err := v.Generate(timestamp, req.Query, req.Body, key)
	if err != nil {
		return err
	}

	ok, err := v.IsValid(req.HeaderValue(v.opts.SignatureHeader), digest)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrSignatureMismatch()
	}

	fresh, err := v.IsRecent(timestamp)
	if err != nil {
		return err
	}
	if !fresh {
		return apperror.ErrRequestExpired()
	}

	return nil
}

// parseTimestamp accepts seconds since the epoch, falling back to RFC 3339.
// Values at or before the epoch are rejected.
func parseTimestamp(s string) (int64, error) {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return 0, err
		}
		ts = t.Unix()
	}
	if ts <= 0 {
		return 0, errNonPositiveTimestamp
	}
	return ts, nil
}
