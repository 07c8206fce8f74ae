package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

type CardFlagHandler struct {
	getCardFlagUC   getCardFlagUseCase
	listCardFlagsUC listCardFlagsUseCase
	logger          logger.Interface
}

func NewCardFlagHandler(getCardFlagUC getCardFlagUseCase, listCardFlagsUC listCardFlagsUseCase) *CardFlagHandler {
	return &CardFlagHandler{
		getCardFlagUC:   getCardFlagUC,
		listCardFlagsUC: listCardFlagsUC,
		logger:          logger.NewLogger(),
	}
}

// GetCardFlag returns a card brand by ID.
func (h *CardFlagHandler) GetCardFlag(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCardFlagUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Card flag retrieved successfully", result)
}

// ListCardFlags returns the accepted card brands.
func (h *CardFlagHandler) ListCardFlags(c *gin.Context) {
	result, err := h.listCardFlagsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Card flags retrieved successfully", result)
}
