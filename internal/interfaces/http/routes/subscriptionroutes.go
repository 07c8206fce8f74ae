package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/interfaces/http/handlers"
	"github.com/caixa-inc/caixa/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	IdempotencyGate     *middleware.IdempotencyGate
}

// SetupSubscriptionRoutes configures subscription routes.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/subscriptions")
	{
		subscriptions.POST("", cfg.IdempotencyGate.Require(), cfg.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("", cfg.SubscriptionHandler.ListSubscriptions)
		subscriptions.GET("/:id", cfg.SubscriptionHandler.GetSubscription)
	}
}
