package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caixa-inc/caixa/internal/shared/config"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func newGateRouter(client *redis.Client) *gin.Engine {
	gate := NewIdempotencyGate(client, &config.IdempotencyConfig{
		RetentionHours:  24,
		InFlightSeconds: 30,
	}, logger.NewLogger())

	router := gin.New()
	router.POST("/payments", gate.Require(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"handled": true})
	})
	return router
}

// newCountingGateRouter routes POST /payments through the gate to a handler
// that counts executions and answers with the given status.
func newCountingGateRouter(client *redis.Client, status int) (*gin.Engine, *int) {
	gate := NewIdempotencyGate(client, &config.IdempotencyConfig{
		RetentionHours:  24,
		InFlightSeconds: 30,
	}, logger.NewLogger())

	executions := 0
	router := gin.New()
	router.POST("/payments", gate.Require(), func(c *gin.Context) {
		executions++
		c.JSON(status, gin.H{"attempt": executions})
	})
	return router, &executions
}

func postPayment(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments", nil)
	req.Header.Set("Idempotency-Key", key)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyGateRequiresHeader(t *testing.T) {
	// The header check happens before any store access, so an unreachable
	// client is fine here.
	router := newGateRouter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))

	req := httptest.NewRequest(http.MethodPost, "/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdempotencyGateFailsOpenWhenStoreDown(t *testing.T) {
	router := newGateRouter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))

	req := httptest.NewRequest(http.MethodPost, "/payments", nil)
	req.Header.Set("Idempotency-Key", "key-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Checkout availability wins over replay protection.
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIdempotencyGateReplaysStoredResponse(t *testing.T) {
	client := setupTestRedis(t)
	router, executions := newCountingGateRouter(client, http.StatusCreated)

	first := postPayment(router, "key-1")
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postPayment(router, "key-1")

	// Same status and body as the first attempt, without a second execution.
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get("Idempotency-Replayed"))
	assert.Equal(t, 1, *executions)
}

func TestIdempotencyGateDistinctKeysExecuteIndependently(t *testing.T) {
	client := setupTestRedis(t)
	router, executions := newCountingGateRouter(client, http.StatusCreated)

	postPayment(router, "key-1")
	w := postPayment(router, "key-2")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("Idempotency-Replayed"))
	assert.Equal(t, 2, *executions)
}

func TestIdempotencyGateConflictsWhileInFlight(t *testing.T) {
	client := setupTestRedis(t)
	router, executions := newCountingGateRouter(client, http.StatusCreated)

	// Mark the key as in flight, as a still-running first attempt would.
	err := client.Set(context.Background(), "idempotency:inflight:POST:/payments:key-1", 1, 0).Err()
	require.NoError(t, err)

	w := postPayment(router, "key-1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, *executions)
}

func TestIdempotencyGateDoesNotStoreServerErrors(t *testing.T) {
	client := setupTestRedis(t)
	router, executions := newCountingGateRouter(client, http.StatusInternalServerError)

	first := postPayment(router, "key-1")
	second := postPayment(router, "key-1")

	// A failed attempt stays retryable under the same key.
	assert.Equal(t, http.StatusInternalServerError, first.Code)
	assert.Equal(t, http.StatusInternalServerError, second.Code)
	assert.Empty(t, second.Header().Get("Idempotency-Replayed"))
	assert.Equal(t, 2, *executions)
}
