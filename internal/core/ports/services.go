//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

package ports

import (
	"context"
	"net/url"
	"time"

	"webhook-verifier/internal/core/domain"
)

// RequestValidator verifies signed webhook requests.
type RequestValidator interface {
	// Generate computes the expected HMAC digest for the given request parts.
	Generate(timestamp string, query url.Values, body []byte, key []byte) ([]byte, error)
	// IsValid compares a base64 signature header value against digest in constant time.
	IsValid(signature string, digest []byte) (bool, error)
	// IsRecent reports whether timestamp lies inside the freshness window.
	IsRecent(timestamp string) (bool, error)
	// Validate runs every check; nil means the request is authentic and fresh.
	Validate(req domain.WebhookRequest, key []byte) error
	// Settings exposed to adapters.
	SignatureHeader() string
	TimestampHeader() string
	MaxAge() time.Duration
	// ReplayTTL is how long an accepted signature must be remembered.
	ReplayTTL(timestamp string) time.Duration
}

// ReplayGuard remembers accepted signatures for replay attack prevention.
type ReplayGuard interface {
	// CheckAndSet atomically records signature if unseen.
	// Returns true if the signature is new, false if already seen within ttl.
	CheckAndSet(ctx context.Context, signature string, ttl time.Duration) (bool, error)
}
