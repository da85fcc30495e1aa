package handler

import (
	"net/http"

	"webhook-verifier/internal/adapter/http/middleware"
	"webhook-verifier/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Validator      ports.RequestValidator
	SigningKey     []byte
	ReplayGuard    ports.ReplayGuard // nil = replay protection disabled
	WebhookPath    string
	MaxBodyBytes   int64
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// MessageBird delivers status reports as GET with query parameters and
	// other events as POST with a body; both are signed the same way.
	webhookAuth := middleware.WebhookAuth(deps.Validator, deps.SigningKey, deps.ReplayGuard, deps.Logger)
	webhookHandler := NewWebhookHandler(deps.Logger)
	r.Match([]string{http.MethodGet, http.MethodPost}, deps.WebhookPath, webhookAuth, webhookHandler.Receive)

	return r
}
