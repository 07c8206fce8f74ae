package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/interfaces/http/handlers"
)

// CardFlagRouteConfig holds dependencies for card flag routes.
type CardFlagRouteConfig struct {
	CardFlagHandler *handlers.CardFlagHandler
}

// SetupCardFlagRoutes configures card flag routes.
func SetupCardFlagRoutes(engine *gin.Engine, cfg *CardFlagRouteConfig) {
	cardFlags := engine.Group("/card-flags")
	{
		cardFlags.GET("", cfg.CardFlagHandler.ListCardFlags)
		cardFlags.GET("/:id", cfg.CardFlagHandler.GetCardFlag)
	}
}
