package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"webhook-verifier/internal/core/domain"
	"webhook-verifier/internal/core/ports"
	"webhook-verifier/pkg/apperror"
	"webhook-verifier/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// Context keys set for handlers behind WebhookAuth.
	CtxRawBody          = "webhook_raw_body"
	CtxWebhookTimestamp = "webhook_timestamp"
)

// WebhookAuth gates a route on a valid webhook signature.
// Pipeline: read body -> validate signature and freshness -> replay check.
// guard may be nil to disable replay protection.
func WebhookAuth(
	validator ports.RequestValidator,
	signingKey []byte,
	guard ports.ReplayGuard,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := readBody(c)
		if err != nil {
			reject(c, log, err)
			return
		}

		req := domain.NewWebhookRequest(c.Request, body)
		if err := validator.Validate(req, signingKey); err != nil {
			reject(c, log, err)
			return
		}

		signature := req.HeaderValue(validator.SignatureHeader())
		timestamp := req.HeaderValue(validator.TimestampHeader())
		if guard != nil {
			isNew, err := guard.CheckAndSet(c.Request.Context(), signature, validator.ReplayTTL(timestamp))
			if err != nil {
				log.Warn().Err(err).Msg("replay store error, allowing request")
			} else if !isNew {
				reject(c, log, apperror.ErrReplayedRequest())
				return
			}
		}

		c.Set(CtxRawBody, body)
		c.Set(CtxWebhookTimestamp, timestamp)
		c.Next()
	}
}

// readBody drains the request body and puts the bytes back for downstream handlers.
func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperror.ErrBodyTooLarge(err)
		}
		return nil, apperror.ErrBodyRead(err)
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

func reject(c *gin.Context, log zerolog.Logger, err error) {
	log.Warn().
		Err(err).
		Str("error_code", apperror.CodeOf(err)).
		Str("path", c.Request.URL.Path).
		Str("client_ip", c.ClientIP()).
		Msg("webhook rejected")
	response.Abort(c, err)
}
