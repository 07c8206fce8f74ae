package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/interfaces/http/handlers"
	"github.com/caixa-inc/caixa/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler  *handlers.PaymentHandler
	IdempotencyGate *middleware.IdempotencyGate
}

// SetupPaymentRoutes configures payment routes.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/payments")
	{
		payments.POST("", cfg.IdempotencyGate.Require(), cfg.PaymentHandler.ProcessPayment)
	}
}
