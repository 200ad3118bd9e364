package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"upireceipts.in/app/internal/http/validation"
	"upireceipts.in/app/internal/modules/receipts"
	"upireceipts.in/app/internal/shared/apperr"
)

type WebhookHandler struct {
	Logger   *slog.Logger
	Pipeline *receipts.Pipeline
}

func NewWebhookHandler(logger *slog.Logger, pipeline *receipts.Pipeline) *WebhookHandler {
	return &WebhookHandler{Logger: logger, Pipeline: pipeline}
}

// Chat-provider callback shape: form-encoded From/Body.
type webhookForm struct {
	From string `form:"From" binding:"required"`
	Body string `form:"Body" binding:"required"`
}

// POST /webhooks/chat
func (h *WebhookHandler) Handle(c *gin.Context) {
	var form webhookForm
	if err := c.ShouldBind(&form); err != nil {
		fields := validation.FromBindError(err, &form)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid webhook payload.",
			"fields":  fields,
		})
		return
	}

	res, err := h.Pipeline.Run(c.Request.Context(), receipts.Request{
		From: form.From,
		Body: form.Body,
	})
	if err != nil {
		h.Logger.Error("receipt pipeline failed", "from", form.From, "err", err)
		c.JSON(apperr.HTTPStatus(err), gin.H{
			"success": false,
			"error":   apperr.PublicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "pdfUrl": res.PDFURL})
}
