package domain

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWebhookRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/hook?b=2&a=1&a=3", nil)
	r.Header.Set("MessageBird-Signature", "c2ln")

	req := NewWebhookRequest(r, []byte("payload"))

	assert.Equal(t, []string{"1", "3"}, req.Query["a"])
	assert.Equal(t, "2", req.Query.Get("b"))
	assert.Equal(t, []byte("payload"), req.Body)
	assert.Equal(t, "c2ln", req.HeaderValue("messagebird-signature"))
}

func TestWebhookRequest_HeaderValue_NilHeader(t *testing.T) {
	var req WebhookRequest
	assert.Empty(t, req.HeaderValue("MessageBird-Signature"))
}
