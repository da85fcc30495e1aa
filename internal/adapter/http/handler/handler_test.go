package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"webhook-verifier/internal/core/ports"
	"webhook-verifier/internal/core/ports/mocks"
	"webhook-verifier/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var signingKey = []byte("router-test-key")

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(now time.Time, guard ports.ReplayGuard, checkers ...ports.HealthChecker) (*gin.Engine, *service.RequestValidator) {
	v := service.NewRequestValidator(service.Options{}, service.WithClock(func() time.Time { return now }))
	r := SetupRouter(RouterDeps{
		Validator:      v,
		SigningKey:     signingKey,
		ReplayGuard:    guard,
		WebhookPath:    "/webhooks/messagebird",
		MaxBodyBytes:   1 << 10,
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
	})
	return r, v
}

type receiptEnvelope struct {
	Data      WebhookReceipt `json:"data"`
	RequestID string         `json:"request_id"`
}

func TestRouter_SignedPOSTAccepted(t *testing.T) {
	router, v := newTestRouter(time.Unix(1700000000, 0), nil)

	body := `{"id":"msg-1","status":"delivered"}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/messagebird", strings.NewReader(body))
	require.NoError(t, v.SignRequest(req, []byte(body), signingKey))
	req.Header.Set("X-Request-ID", "req-abc")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp receiptEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Received)
	assert.Equal(t, "1700000000", resp.Data.Timestamp)
	assert.Equal(t, len(body), resp.Data.BodyBytes)
	assert.Equal(t, "req-abc", resp.RequestID)
}

func TestRouter_SignedGETStatusReportAccepted(t *testing.T) {
	router, v := newTestRouter(time.Unix(1700000000, 0), nil)

	target := "/webhooks/messagebird?id=e8077d80&recipient=31612345678&status=delivered&statusDatetime=2023-11-14T22:13:20+00:00"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, v.SignRequest(req, nil, signingKey))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UnsignedRejected(t *testing.T) {
	router, _ := newTestRouter(time.Unix(1700000000, 0), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhooks/messagebird", strings.NewReader("{}")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "SIG_001")
}

func TestRouter_WrongKeyRejected(t *testing.T) {
	router, v := newTestRouter(time.Unix(1700000000, 0), nil)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/messagebird", strings.NewReader("{}"))
	require.NoError(t, v.SignRequest(req, []byte("{}"), []byte("other-tenant-key")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SIG_004")
}

func TestRouter_BodyLimit(t *testing.T) {
	router, v := newTestRouter(time.Unix(1700000000, 0), nil)

	body := strings.Repeat("x", 2<<10)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/messagebird", strings.NewReader(body))
	require.NoError(t, v.SignRequest(req, []byte(body), signingKey))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRouter_ReplayGuardWired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guard := mocks.NewMockReplayGuard(ctrl)
	guard.EXPECT().CheckAndSet(gomock.Any(), gomock.Any(), 100*time.Second).Return(false, nil)

	router, v := newTestRouter(time.Unix(1700000000, 0), guard)
	req := httptest.NewRequest(http.MethodPost, "/webhooks/messagebird", strings.NewReader("{}"))
	require.NoError(t, v.SignRequest(req, []byte("{}"), signingKey))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthCheck_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCheck := mocks.NewMockHealthChecker(ctrl)
	redisCheck.EXPECT().Ping(gomock.Any()).Return(nil)
	redisCheck.EXPECT().Name().Return("redis").AnyTimes()

	router, _ := newTestRouter(time.Now(), nil, redisCheck)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCheck := mocks.NewMockHealthChecker(ctrl)
	redisCheck.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	redisCheck.EXPECT().Name().Return("redis").AnyTimes()

	router, _ := newTestRouter(time.Now(), nil, redisCheck)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "unhealthy", deps["redis"].(map[string]interface{})["status"])
}

func TestHealthCheck_NoCheckers(t *testing.T) {
	router, _ := newTestRouter(time.Now(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
