package handler

import (
	"webhook-verifier/internal/adapter/http/middleware"
	"webhook-verifier/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler acknowledges webhooks that passed WebhookAuth.
type WebhookHandler struct {
	log zerolog.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{log: log}
}

// WebhookReceipt is returned to the sender for accepted webhooks.
type WebhookReceipt struct {
	Received  bool   `json:"received"`
	Timestamp string `json:"webhook_timestamp"`
	BodyBytes int    `json:"body_bytes"`
}

// Receive handles GET|POST on the webhook path.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var body []byte
	if raw, ok := c.Get(middleware.CtxRawBody); ok {
		body, _ = raw.([]byte)
	}
	timestamp := c.GetString(middleware.CtxWebhookTimestamp)

	h.log.Info().
		Str("request_id", response.RequestID(c)).
		Str("method", c.Request.Method).
		Str("webhook_timestamp", timestamp).
		Int("query_params", len(c.Request.URL.Query())).
		Int("body_bytes", len(body)).
		Msg("webhook accepted")

	response.OK(c, WebhookReceipt{
		Received:  true,
		Timestamp: timestamp,
		BodyBytes: len(body),
	})
}
