package domain

import (
	"net/http"
	"net/url"
)

// WebhookRequest is the transport-neutral view of an inbound webhook call.
// Body holds the exact bytes received, before any parsing.
type WebhookRequest struct {
	Header http.Header
	Query  url.Values
	Body   []byte
}

// NewWebhookRequest builds a WebhookRequest from an already-read *http.Request body.
func NewWebhookRequest(r *http.Request, body []byte) WebhookRequest {
	return WebhookRequest{
		Header: r.Header,
		Query:  r.URL.Query(),
		Body:   body,
	}
}

// HeaderValue returns the first value of the named header (case-insensitive).
func (r WebhookRequest) HeaderValue(name string) string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get(name)
}
