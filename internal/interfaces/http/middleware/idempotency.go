package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/caixa-inc/caixa/internal/shared/config"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

const idempotencyKeyHeader = "Idempotency-Key"

// IdempotencyGate makes mutating checkout endpoints safe to retry. The first
// request with a given Idempotency-Key executes and its response is stored;
// a retry with the same key replays the stored response instead of executing
// again. A retry that arrives while the first attempt is still running gets
// 409 rather than a second execution. Keys are scoped per method and path and
// kept for the configured retention window.
type IdempotencyGate struct {
	redisClient *redis.Client
	inFlightTTL time.Duration
	retention   time.Duration
	logger      logger.Interface
}

// NewIdempotencyGate creates a Redis-backed idempotency gate.
func NewIdempotencyGate(redisClient *redis.Client, cfg *config.IdempotencyConfig, log logger.Interface) *IdempotencyGate {
	return &IdempotencyGate{
		redisClient: redisClient,
		inFlightTTL: time.Duration(cfg.InFlightSeconds) * time.Second,
		retention:   time.Duration(cfg.RetentionHours) * time.Hour,
		logger:      log,
	}
}

// storedResponse is the replayable part of a completed response.
type storedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// bodyCapturingWriter duplicates everything written to the response so the
// gate can store it after the handler finishes.
type bodyCapturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCapturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Require returns the middleware. Requests without an Idempotency-Key header
// are rejected with 400.
func (g *IdempotencyGate) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyKeyHeader)
		if key == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "Idempotency-Key header is required")
			c.Abort()
			return
		}

		scope := fmt.Sprintf("%s:%s:%s", c.Request.Method, c.FullPath(), key)
		responseKey := "idempotency:response:" + scope
		inFlightKey := "idempotency:inflight:" + scope

		ctx := context.Background()

		if g.replayStored(ctx, c, responseKey) {
			return
		}

		acquired, err := g.redisClient.SetNX(ctx, inFlightKey, 1, g.inFlightTTL).Result()
		if err != nil {
			// If Redis is unavailable, let the request through rather than
			// blocking all checkouts.
			g.logger.Warnw("idempotency store unavailable", "error", err)
			c.Next()
			return
		}
		if !acquired {
			// Another request with the same key may have finished between
			// our read and the SETNX; check the stored response once more.
			if g.replayStored(ctx, c, responseKey) {
				return
			}
			utils.ErrorResponse(c, http.StatusConflict, "A request with this Idempotency-Key is already in progress")
			c.Abort()
			return
		}

		writer := &bodyCapturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		g.store(ctx, responseKey, writer)
		g.redisClient.Del(ctx, inFlightKey)
	}
}

func (g *IdempotencyGate) replayStored(ctx context.Context, c *gin.Context, responseKey string) bool {
	raw, err := g.redisClient.Get(ctx, responseKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			g.logger.Warnw("failed to read stored response", "error", err)
		}
		return false
	}

	var stored storedResponse
	if err := json.Unmarshal(raw, &stored); err != nil {
		g.logger.Warnw("failed to decode stored response", "error", err)
		return false
	}

	c.Header("Idempotency-Replayed", "true")
	c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
	c.Abort()
	return true
}

func (g *IdempotencyGate) store(ctx context.Context, responseKey string, writer *bodyCapturingWriter) {
	// 5xx responses are not stored: the caller should be able to retry a
	// failed attempt with the same key.
	if writer.Status() >= http.StatusInternalServerError {
		return
	}

	stored := storedResponse{
		Status: writer.Status(),
		Body:   writer.body.Bytes(),
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		g.logger.Warnw("failed to encode response for storage", "error", err)
		return
	}

	if err := g.redisClient.Set(ctx, responseKey, raw, g.retention).Err(); err != nil {
		g.logger.Warnw("failed to store response", "error", err)
	}
}
