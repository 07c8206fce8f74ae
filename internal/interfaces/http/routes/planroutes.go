package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/interfaces/http/handlers"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler *handlers.PlanHandler
}

// SetupPlanRoutes configures plan routes.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/plans")
	{
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)
	}
}
