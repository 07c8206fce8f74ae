package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
	"github.com/caixa-inc/caixa/internal/shared/errors"
	"github.com/caixa-inc/caixa/internal/shared/logger"
	"github.com/caixa-inc/caixa/internal/shared/utils"
)

type PaymentHandler struct {
	processPaymentUC processPaymentUseCase
	logger           logger.Interface
}

func NewPaymentHandler(processPaymentUC processPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		processPaymentUC: processPaymentUC,
		logger:           logger.NewLogger(),
	}
}

type ProcessPaymentRequest struct {
	SubscriptionID uint   `json:"subscription_id" binding:"required"`
	CardNumber     string `json:"card_number" binding:"required,min=13,max=19,carddigits"`
	ClientName     string `json:"client_name" binding:"required"`
	ExpireDate     string `json:"expire_date" binding:"required"`
	CVC            string `json:"cvc" binding:"required,min=3,max=4"`
	CardFlagID     uint   `json:"card_flag_id" binding:"required"`
}

// ProcessPayment charges a pending subscription. Both approved and declined
// outcomes return 201 with the recorded transaction; only an unknown gateway
// outcome is an error.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for process payment", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body.", err.Error()))
		return
	}

	cmd := usecases.ProcessPaymentCommand{
		SubscriptionID: req.SubscriptionID,
		CardNumber:     req.CardNumber,
		ClientName:     req.ClientName,
		ExpireDate:     req.ExpireDate,
		CVC:            req.CVC,
		CardFlagID:     req.CardFlagID,
	}

	result, err := h.processPaymentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Payment approved"
	if !result.Status {
		message = "Payment declined"
	}

	utils.CreatedResponse(c, result, message)
}
