package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"aula/internal/application/billing/usecases"
	"aula/internal/shared/constants"
	"aula/internal/shared/errors"
	"aula/internal/shared/logger"
	"aula/internal/shared/utils"
)

// WebhookHandler receives payment provider deliveries. Signature and payload
// problems are rejected with 400 so the provider stops retrying; processing
// failures return 500 so it retries later.
type WebhookHandler struct {
	processEvent *usecases.ProcessWebhookEventUseCase
	logger       logger.Interface
}

func NewWebhookHandler(processEvent *usecases.ProcessWebhookEventUseCase, logger logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		processEvent: processEvent,
		logger:       logger,
	}
}

func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	signature := c.GetHeader(constants.HeaderWebhookSignature)
	if signature == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing signature header")
		return
	}

	if err := h.processEvent.Execute(c.Request.Context(), body, signature); err != nil {
		if errors.IsValidationError(err) {
			utils.AppErrorResponse(c, err)
			return
		}
		h.logger.Errorw("webhook processing failed", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "event processing failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
