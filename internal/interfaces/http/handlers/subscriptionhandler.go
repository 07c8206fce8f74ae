package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
	"github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC createSubscriptionUseCase
	getSubscriptionUC    getSubscriptionUseCase
	listSubscriptionsUC  listSubscriptionsUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC createSubscriptionUseCase,
	getSubscriptionUC getSubscriptionUseCase,
	listSubscriptionsUC listSubscriptionsUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC: createSubscriptionUC,
		getSubscriptionUC:    getSubscriptionUC,
		listSubscriptionsUC:  listSubscriptionsUC,
		logger:               logger.NewLogger(),
	}
}

type CreateSubscriptionRequest struct {
	PlanID     uint   `json:"plan_id" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	CouponCode string `json:"coupon"`
}

// CreateSubscription creates a pending subscription for a plan. The coupon,
// when given, is validated and redeemed in the same request.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body.", err.Error()))
		return
	}

	cmd := usecases.CreateSubscriptionCommand{
		PlanID:     req.PlanID,
		Email:      req.Email,
		CouponCode: req.CouponCode,
	}

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

// GetSubscription returns a subscription with its plan, coupon and latest
// payment attempt.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSubscriptionUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription retrieved successfully", result)
}

// ListSubscriptions returns all subscriptions, newest first.
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	result, err := h.listSubscriptionsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscriptions retrieved successfully", result)
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + name + " parameter.")
	}
	return uint(id), nil
}
