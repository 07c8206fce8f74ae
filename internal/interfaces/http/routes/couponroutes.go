package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/interfaces/http/handlers"
)

// CouponRouteConfig holds dependencies for coupon routes.
type CouponRouteConfig struct {
	CouponHandler *handlers.CouponHandler
}

// SetupCouponRoutes configures coupon routes.
func SetupCouponRoutes(engine *gin.Engine, cfg *CouponRouteConfig) {
	engine.POST("/coupons-validate", cfg.CouponHandler.ValidateCoupon)
	engine.GET("/coupons", cfg.CouponHandler.ListCoupons)
	engine.GET("/coupons/:id", cfg.CouponHandler.GetCoupon)
}
