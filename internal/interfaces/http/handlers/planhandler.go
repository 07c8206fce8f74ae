package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

type PlanHandler struct {
	getPlanUC   getPlanUseCase
	listPlansUC listPlansUseCase
	logger      logger.Interface
}

func NewPlanHandler(getPlanUC getPlanUseCase, listPlansUC listPlansUseCase) *PlanHandler {
	return &PlanHandler{
		getPlanUC:   getPlanUC,
		listPlansUC: listPlansUC,
		logger:      logger.NewLogger(),
	}
}

// GetPlan returns a plan by ID.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan retrieved successfully", result)
}

// ListPlans returns all plans.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plans retrieved successfully", result)
}
