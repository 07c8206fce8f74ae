package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

type CouponHandler struct {
	validateCouponUC validateCouponUseCase
	getCouponUC      getCouponUseCase
	listCouponsUC    listCouponsUseCase
	logger           logger.Interface
}

func NewCouponHandler(validateCouponUC validateCouponUseCase, getCouponUC getCouponUseCase, listCouponsUC listCouponsUseCase) *CouponHandler {
	return &CouponHandler{
		validateCouponUC: validateCouponUC,
		getCouponUC:      getCouponUC,
		listCouponsUC:    listCouponsUC,
		logger:           logger.NewLogger(),
	}
}

type ValidateCouponRequest struct {
	Coupon string `json:"coupon" binding:"required"`
	PlanID *uint  `json:"plan_id"`
}

// ValidateCoupon checks whether a coupon is currently usable, optionally
// scoped to a plan. The answer is advisory: nothing is consumed, and the
// check runs again when the subscription is created. Rejections return 422
// with valid=false.
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for validate coupon", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body.", err.Error()))
		return
	}

	result, err := h.validateCouponUC.Execute(c.Request.Context(), req.Coupon, req.PlanID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCoupon returns a coupon by ID.
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCouponUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Coupon retrieved successfully", result)
}

// ListCoupons lists coupons; an optional plan_id query restricts the result
// to coupons usable with that plan.
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	var planID *uint
	if raw := c.Query("plan_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid plan_id parameter."))
			return
		}
		id := uint(parsed)
		planID = &id
	}

	result, err := h.listCouponsUC.Execute(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Coupons retrieved successfully", result)
}
