// Package http wires the checkout HTTP surface: handlers, middleware and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/caixa-inc/caixa/internal/application/checkout/services"
	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
	"github.com/caixa-inc/caixa/internal/infrastructure/config"
	"github.com/caixa-inc/caixa/internal/infrastructure/gateway"
	"github.com/caixa-inc/caixa/internal/infrastructure/repository"
	"github.com/caixa-inc/caixa/internal/interfaces/http/handlers"
	"github.com/caixa-inc/caixa/internal/interfaces/http/middleware"
	"github.com/caixa-inc/caixa/internal/interfaces/http/routes"
	"github.com/caixa-inc/caixa/internal/shared/db"
	"github.com/caixa-inc/caixa/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	subscriptionHandler *handlers.SubscriptionHandler
	paymentHandler      *handlers.PaymentHandler
	couponHandler       *handlers.CouponHandler
	planHandler         *handlers.PlanHandler
	cardFlagHandler     *handlers.CardFlagHandler
	idempotencyGate     *middleware.IdempotencyGate
	logger              logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	planRepo := repository.NewPlanRepository(database, log)
	couponRepo := repository.NewCouponRepository(database, log)
	subscriptionRepo := repository.NewSubscriptionRepository(database, log)
	cardRepo := repository.NewCardRepository(database, log)
	cardFlagRepo := repository.NewCardFlagRepository(database, log)
	transactionRepo := repository.NewTransactionRepository(database, log)

	txManager := db.NewTransactionManager(database)
	paymentGateway := gateway.NewSimulatedGateway(&cfg.Gateway, log)

	couponValidator := services.NewCouponValidator(couponRepo, log)
	pricing := services.NewPricingCalculator()

	createSubscriptionUC := usecases.NewCreateSubscriptionUseCase(
		subscriptionRepo, planRepo, couponRepo, couponValidator, pricing, txManager, log)
	getSubscriptionUC := usecases.NewGetSubscriptionUseCase(
		subscriptionRepo, planRepo, couponRepo, transactionRepo, cardRepo, log)
	listSubscriptionsUC := usecases.NewListSubscriptionsUseCase(subscriptionRepo, log)
	processPaymentUC := usecases.NewProcessPaymentUseCase(
		subscriptionRepo, planRepo, couponRepo, cardRepo, cardFlagRepo, transactionRepo,
		paymentGateway, pricing, txManager, log)
	validateCouponUC := usecases.NewValidateCouponUseCase(couponValidator, log)
	getCouponUC := usecases.NewGetCouponUseCase(couponRepo, log)
	listCouponsUC := usecases.NewListCouponsUseCase(couponRepo, log)
	getPlanUC := usecases.NewGetPlanUseCase(planRepo, log)
	listPlansUC := usecases.NewListPlansUseCase(planRepo, log)
	getCardFlagUC := usecases.NewGetCardFlagUseCase(cardFlagRepo, log)
	listCardFlagsUC := usecases.NewListCardFlagsUseCase(cardFlagRepo, log)

	return &Router{
		engine:              engine,
		subscriptionHandler: handlers.NewSubscriptionHandler(createSubscriptionUC, getSubscriptionUC, listSubscriptionsUC),
		paymentHandler:      handlers.NewPaymentHandler(processPaymentUC),
		couponHandler:       handlers.NewCouponHandler(validateCouponUC, getCouponUC, listCouponsUC),
		planHandler:         handlers.NewPlanHandler(getPlanUC, listPlansUC),
		cardFlagHandler:     handlers.NewCardFlagHandler(getCardFlagUC, listCardFlagsUC),
		idempotencyGate:     middleware.NewIdempotencyGate(redisClient, &cfg.Idempotency, log),
		logger:              log,
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS([]string{"http://localhost:3000"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupSubscriptionRoutes(r.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: r.subscriptionHandler,
		IdempotencyGate:     r.idempotencyGate,
	})
	routes.SetupPaymentRoutes(r.engine, &routes.PaymentRouteConfig{
		PaymentHandler:  r.paymentHandler,
		IdempotencyGate: r.idempotencyGate,
	})
	routes.SetupCouponRoutes(r.engine, &routes.CouponRouteConfig{
		CouponHandler: r.couponHandler,
	})
	routes.SetupPlanRoutes(r.engine, &routes.PlanRouteConfig{
		PlanHandler: r.planHandler,
	})
	routes.SetupCardFlagRoutes(r.engine, &routes.CardFlagRouteConfig{
		CardFlagHandler: r.cardFlagHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
